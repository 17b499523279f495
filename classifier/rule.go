package classifier

import (
	"context"
	"strings"

	"github.com/hupe1980/supportmesh/core"
)

// Keyword lists backing the rule-based classifier. Category lists are
// checked in declaration order (technical before billing); sentiment checks
// negative before positive so a mixed query is never routed to a
// low-attention path.
var (
	technicalKeywords = []string{
		"login", "log in", "sign in", "password", "error", "bug", "crash",
		"connection", "network", "slow", "server", "database", "system",
		"install", "update", "freez", "broken",
	}
	billingKeywords = []string{
		"refund", "chargeback", "charge", "bill", "invoice", "payment",
		"pay", "card", "price", "subscription", "cost",
	}
	negativeKeywords = []string{
		"furious", "angry", "frustrat", "annoy", "unacceptable", "terrible",
		"awful", "worst", "disappoint", "outrag", "hate", "useless",
		"ridiculous", "fed up",
	}
	positiveKeywords = []string{
		"thank", "great", "awesome", "love", "excellent", "perfect",
		"amazing", "happy", "wonderful",
	}
)

// Rule is a deterministic keyword classifier satisfying core.Classifier
// without any network dependency. It is the default oracle: good enough for
// demos and tests, and a stable fallback when no model backend is
// configured. Matching is case-insensitive substring; several keywords are
// stems ("frustrat") to cover inflections.
type Rule struct{}

// NewRule creates the rule-based classifier.
func NewRule() *Rule { return &Rule{} }

// Classify labels text by keyword lookup. It is infallible: text matching
// no list is General/Neutral.
func (r *Rule) Classify(_ context.Context, text string) (core.Classification, error) {
	q := strings.ToLower(text)

	category := core.CategoryGeneral
	if matchesAny(q, technicalKeywords) {
		category = core.CategoryTechnical
	} else if matchesAny(q, billingKeywords) {
		category = core.CategoryBilling
	}

	sentiment := core.SentimentNeutral
	if matchesAny(q, negativeKeywords) {
		sentiment = core.SentimentNegative
	} else if matchesAny(q, positiveKeywords) {
		sentiment = core.SentimentPositive
	}

	return core.Classification{Category: category, Sentiment: sentiment}, nil
}

func matchesAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
