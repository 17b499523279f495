package agent

import "github.com/hupe1980/supportmesh/core"

const hoursInfo = "We are open Monday to Friday from 8am to 6pm, and Saturdays from 9am to 2pm."

// Static company information table.
var companyInfo = lookupTable{
	{
		keywords: []string{"hours", "open", "opening"},
		response: hoursInfo,
	},
	{
		keywords: []string{"contact", "phone", "email", "reach"},
		response: "You can reach us by phone at (11) 1234-5678 or by email at support@company.com.",
	},
	{
		keywords: []string{"address", "location", "office", "where"},
		response: "Our office is at 123 Example Street, Sao Paulo, SP.",
	},
	{
		keywords: []string{"warranty", "guarantee"},
		response: "We offer a 12-month warranty on physical products and 30 days on digital services.",
	},
	{
		keywords: []string{"delivery", "shipping", "ship"},
		response: "Standard delivery takes 5 to 10 business days nationwide.",
	},
}

// hoursSynonyms catch operating-hours questions that miss the primary
// "hours" triggers.
var hoursSynonyms = []string{"operating", "schedule", "business"}

// generalMiss lists the topics the table can answer.
const generalMiss = "Sorry, I could not find that specific information. I can help with opening hours, contact details, our address, warranty or delivery."

// General answers company information questions from a static table,
// falling back to the operating-hours entry for its synonyms. It never
// escalates.
type General struct{}

// NewGeneral creates the general information handler.
func NewGeneral() *General { return &General{} }

// Kind identifies this handler in turn records.
func (a *General) Kind() core.AgentKind { return core.AgentGeneral }

// Handle looks up company information for the query.
func (a *General) Handle(query string, _ *core.ConversationState) core.HandlerResult {
	response, ok := companyInfo.match(query)
	if !ok {
		if containsAny(query, hoursSynonyms) {
			response = hoursInfo
		} else {
			response = generalMiss
		}
	}
	return core.HandlerResult{Response: response}
}
