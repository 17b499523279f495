package core

import "fmt"

// Category classifies what a customer query is about. The set is closed;
// handlers never invent categories and unknown labels from a classification
// backend must be rejected at the adapter boundary.
type Category string

const (
	// CategoryTechnical covers product malfunctions, bugs and usage problems.
	CategoryTechnical Category = "Technical"
	// CategoryBilling covers charges, payments and refunds.
	CategoryBilling Category = "Billing"
	// CategoryGeneral covers company information and everything else.
	CategoryGeneral Category = "General"
)

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryBilling, CategoryGeneral:
		return true
	}
	return false
}

// ParseCategory converts a raw label into a Category, rejecting anything
// outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category label %q", s)
	}
	return c, nil
}

// Sentiment captures the emotional tone of a customer query.
type Sentiment string

const (
	// SentimentPositive indicates a satisfied customer.
	SentimentPositive Sentiment = "Positive"
	// SentimentNeutral indicates a plain question without emotional charge.
	SentimentNeutral Sentiment = "Neutral"
	// SentimentNegative indicates a complaining or frustrated customer.
	SentimentNegative Sentiment = "Negative"
)

// Valid reports whether s is one of the defined sentiments.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// ParseSentiment converts a raw label into a Sentiment, rejecting anything
// outside the closed set.
func ParseSentiment(s string) (Sentiment, error) {
	v := Sentiment(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown sentiment label %q", s)
	}
	return v, nil
}

// Priority ranks how urgently a turn needs attention. It is derived by the
// policy tables and never set directly by a handler.
type Priority string

const (
	// PriorityHigh marks turns needing immediate attention.
	PriorityHigh Priority = "High"
	// PriorityMedium marks turns that should be handled promptly.
	PriorityMedium Priority = "Medium"
	// PriorityLow marks routine turns.
	PriorityLow Priority = "Low"
)

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// AgentKind identifies which processing unit produced the response recorded
// on a turn.
type AgentKind string

const (
	// AgentCoordinator is the pre-dispatch default before any handler ran.
	AgentCoordinator AgentKind = "Coordinator"
	// AgentTechnical is the technical support handler.
	AgentTechnical AgentKind = "Technical"
	// AgentBilling is the billing support handler.
	AgentBilling AgentKind = "Billing"
	// AgentGeneral is the general information handler.
	AgentGeneral AgentKind = "General"
	// AgentEscalation tags turns flagged for human follow-up. The response
	// body is still produced by the category handler; only the attribution
	// changes so escalated turns are visible in the record.
	AgentEscalation AgentKind = "Escalation"
)

// Route is the dispatch target computed by the policy tables.
type Route string

const (
	// RouteEscalate forces priority queueing for human follow-up.
	RouteEscalate Route = "escalate"
	// RouteTechnical dispatches to the technical handler.
	RouteTechnical Route = "technical"
	// RouteBilling dispatches to the billing handler.
	RouteBilling Route = "billing"
	// RouteGeneral dispatches to the general handler.
	RouteGeneral Route = "general"
)
