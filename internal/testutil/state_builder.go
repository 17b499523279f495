package testutil

import (
	"github.com/hupe1980/supportmesh/core"
)

// StateBuilder helps construct conversation state with fluent chaining for
// tests. Example:
//
//	state := NewStateBuilder("t-1").Category(core.CategoryBilling).Turn("q", "r").Build()
type StateBuilder struct {
	state *core.ConversationState
}

// NewStateBuilder creates a new builder for a thread with the given id. Use
// chainable methods then call Build.
func NewStateBuilder(threadID string) *StateBuilder {
	return &StateBuilder{state: core.NewConversationState(threadID)}
}

// Query sets the current query (chainable).
func (b *StateBuilder) Query(q string) *StateBuilder {
	b.state.Query = q
	return b
}

// Category sets the category label (chainable).
func (b *StateBuilder) Category(c core.Category) *StateBuilder {
	b.state.Category = c
	return b
}

// Sentiment sets the sentiment label (chainable).
func (b *StateBuilder) Sentiment(s core.Sentiment) *StateBuilder {
	b.state.Sentiment = s
	return b
}

// Priority sets the priority (chainable).
func (b *StateBuilder) Priority(p core.Priority) *StateBuilder {
	b.state.Priority = p
	return b
}

// Agent sets the attributed agent kind (chainable).
func (b *StateBuilder) Agent(k core.AgentKind) *StateBuilder {
	b.state.AgentUsed = k
	return b
}

// Escalated flags the state for human follow-up (chainable).
func (b *StateBuilder) Escalated() *StateBuilder {
	b.state.Escalated = true
	return b
}

// Turn appends one completed turn to the history (chainable).
func (b *StateBuilder) Turn(query, response string) *StateBuilder {
	b.state.AppendTurn(query, response)
	b.state.Response = response
	return b
}

// Build returns the assembled *core.ConversationState.
func (b *StateBuilder) Build() *core.ConversationState {
	return b.state
}
