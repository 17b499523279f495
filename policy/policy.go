// Package policy implements the deterministic decision tables mapping a
// turn's category and sentiment to a priority and a dispatch route. All
// functions are pure and total over the closed label enumerations.
//
// Tie-break rule: negative sentiment always wins. An unhappy customer is
// escalated and ranked high-priority regardless of topic.
package policy

import "github.com/hupe1980/supportmesh/core"

// Priority derives the attention rank for a labelled turn.
//
// Table:
//   - Negative sentiment         -> High (overrides everything)
//   - Billing                    -> Medium
//   - Technical with Neutral     -> Medium
//   - everything else            -> Low
func Priority(category core.Category, sentiment core.Sentiment) core.Priority {
	if sentiment == core.SentimentNegative {
		return core.PriorityHigh
	}
	if category == core.CategoryBilling {
		return core.PriorityMedium
	}
	if category == core.CategoryTechnical && sentiment == core.SentimentNeutral {
		return core.PriorityMedium
	}
	return core.PriorityLow
}

// Route selects the dispatch target for a labelled turn.
//
// Table:
//   - Negative sentiment -> Escalate (takes precedence over category)
//   - Technical          -> Technical handler
//   - Billing            -> Billing handler
//   - everything else    -> General handler
func Route(category core.Category, sentiment core.Sentiment) core.Route {
	if sentiment == core.SentimentNegative {
		return core.RouteEscalate
	}
	switch category {
	case core.CategoryTechnical:
		return core.RouteTechnical
	case core.CategoryBilling:
		return core.RouteBilling
	default:
		return core.RouteGeneral
	}
}
