package core

// HandlerResult is the outcome of dispatching a query to a specialist
// handler.
type HandlerResult struct {
	// Response is the user-visible answer. A knowledge-table miss still
	// produces a response (a clarification prompt), never an error.
	Response string
	// Escalated is true when the handler's own checks flag the turn for
	// human follow-up. The router ORs it with the policy-level flag, so a
	// handler can raise but never clear an escalation.
	Escalated bool
}

// Handler is a specialist processing unit owning a static knowledge table
// and an optional secondary check. Handlers are pure: they read the query
// and the already-labelled state and compute a result without I/O or
// mutation.
type Handler interface {
	Kind() AgentKind
	Handle(query string, state *ConversationState) HandlerResult
}
