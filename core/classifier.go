package core

import "context"

// Classification is the label pair produced for a query. Both fields are
// always members of their closed enumerations.
type Classification struct {
	Category  Category
	Sentiment Sentiment
}

// Classifier labels raw customer text with a category and a sentiment. Any
// implementation satisfying the contract is valid: rule-based, model-backed
// or cached.
//
// Contract:
//   - Classify MUST return labels from the closed enumerations or an error;
//     it never invents labels.
//   - Failures are reported as *ClassificationError so the router can apply
//     its safe-default fallback. A classifier failure is never fatal to a
//     turn.
//   - Classify is the only orchestration step with externally variable
//     latency; implementations must honor ctx cancellation.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}
