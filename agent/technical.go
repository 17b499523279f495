package agent

import "github.com/hupe1980/supportmesh/core"

// Technical solution snippets keyed by symptom. Entry order matters only
// for queries mentioning several symptoms; the first listed wins.
var technicalSolutions = lookupTable{
	{
		keywords: []string{"login", "log in", "sign in", "password"},
		response: "Check that your email and password are correct, then try resetting the password through the 'Forgot my password' link.",
	},
	{
		keywords: []string{"connection", "connect", "network", "offline"},
		response: "Restart your modem and router, and check whether other devices on the same network are working.",
	},
	{
		keywords: []string{"error", "bug", "broken"},
		response: "Clear your browser cache and cookies and reload the page. If the error persists, send us the error code shown.",
	},
	{
		keywords: []string{"slow", "lag", "freez"},
		response: "Close other programs or browser tabs you are not using and check CPU usage in your task manager.",
	},
}

// technicalMiss is returned when no knowledge base entry matches.
const technicalMiss = "No specific solution was found in the knowledge base. Please describe the problem in more detail."

// severityKeywords flag problems that must reach a level-2 specialist no
// matter what the knowledge base says.
var severityKeywords = []string{
	"system crashed",
	"critical error",
	"lost data",
	"data loss",
	"server",
	"database",
}

// Technical resolves product and usage problems from the technical
// knowledge base. Its secondary check scans the full query for severity
// keywords; any hit forces escalation regardless of the table lookup
// outcome.
type Technical struct{}

// NewTechnical creates the technical support handler.
func NewTechnical() *Technical { return &Technical{} }

// Kind identifies this handler in turn records.
func (a *Technical) Kind() core.AgentKind { return core.AgentTechnical }

// Handle looks up a solution and evaluates problem severity.
func (a *Technical) Handle(query string, _ *core.ConversationState) core.HandlerResult {
	response, ok := technicalSolutions.match(query)
	if !ok {
		response = technicalMiss
	}
	escalated := containsAny(query, severityKeywords)
	if escalated {
		response = "This problem will be escalated to a level-2 specialist.\n\n" + response
	}
	return core.HandlerResult{Response: response, Escalated: escalated}
}
