package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supportmesh/core"
)

var _ core.Classifier = (*Rule)(nil)

func TestRule_Classify(t *testing.T) {
	r := NewRule()

	tests := []struct {
		name      string
		query     string
		category  core.Category
		sentiment core.Sentiment
	}{
		{
			name:      "login problem is technical neutral",
			query:     "I can't log in to the system",
			category:  core.CategoryTechnical,
			sentiment: core.SentimentNeutral,
		},
		{
			name:      "double charge is billing neutral",
			query:     "I was charged twice on my card",
			category:  core.CategoryBilling,
			sentiment: core.SentimentNeutral,
		},
		{
			name:      "hours question is general neutral",
			query:     "What are your business hours?",
			category:  core.CategoryGeneral,
			sentiment: core.SentimentNeutral,
		},
		{
			name:      "crash with fury is technical negative",
			query:     "The system crashed and I lost all my data, I'm furious!",
			category:  core.CategoryTechnical,
			sentiment: core.SentimentNegative,
		},
		{
			name:      "praise is positive",
			query:     "Thank you, the delivery was great",
			category:  core.CategoryGeneral,
			sentiment: core.SentimentPositive,
		},
		{
			name:      "negative beats positive in mixed queries",
			query:     "Thank you for nothing, this is unacceptable",
			category:  core.CategoryGeneral,
			sentiment: core.SentimentNegative,
		},
		{
			name:      "technical beats billing when both match",
			query:     "The payment page throws an error",
			category:  core.CategoryTechnical,
			sentiment: core.SentimentNeutral,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Classify(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.sentiment, got.Sentiment)
		})
	}
}

func TestRule_Deterministic(t *testing.T) {
	r := NewRule()
	first, err := r.Classify(context.Background(), "my invoice is wrong")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.Classify(context.Background(), "my invoice is wrong")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
