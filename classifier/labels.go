package classifier

import (
	"fmt"
	"strings"

	"github.com/hupe1980/supportmesh/core"
)

// Instructions is the single prompt shared by the model-backed adapters.
// The model must answer with exactly one line "<Category>,<Sentiment>" so
// the reply can be parsed without any free-text interpretation.
const Instructions = `You label customer support queries.

Category is one of:
- Technical: product malfunctions, bugs, features, usage problems.
- Billing: charges, payments, invoices, refunds.
- General: company information, opening hours, policies, anything else.

Sentiment is one of:
- Positive: satisfied customer, praising.
- Neutral: plain question, no emotional charge.
- Negative: dissatisfied customer, complaining, frustrated.

Answer with exactly one line in the form: Category,Sentiment
Example: Billing,Neutral`

// ParseLabels converts a model reply into a Classification, rejecting
// anything outside the closed label sets.
func ParseLabels(raw string) (core.Classification, error) {
	line := strings.TrimSpace(raw)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return core.Classification{}, fmt.Errorf("malformed label reply %q", raw)
	}
	category, err := core.ParseCategory(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Classification{}, err
	}
	sentiment, err := core.ParseSentiment(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Classification{}, err
	}
	return core.Classification{Category: category, Sentiment: sentiment}, nil
}

// FormatLabels renders a Classification in the same one-line form the
// adapters parse. Used by the cache to round-trip label pairs.
func FormatLabels(c core.Classification) string {
	return string(c.Category) + "," + string(c.Sentiment)
}
