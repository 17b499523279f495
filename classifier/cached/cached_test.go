package cached

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supportmesh/core"
)

var _ core.Classifier = (*Classifier)(nil)

// countingClassifier tracks how often the inner backend is consulted.
type countingClassifier struct {
	calls  int
	result core.Classification
	err    error
}

func (c *countingClassifier) Classify(context.Context, string) (core.Classification, error) {
	c.calls++
	if c.err != nil {
		return core.Classification{}, c.err
	}
	return c.result, nil
}

func setup(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCached_ReadThrough(t *testing.T) {
	_, client := setup(t)
	inner := &countingClassifier{result: core.Classification{
		Category:  core.CategoryTechnical,
		Sentiment: core.SentimentNeutral,
	}}
	c := New(inner, client)

	ctx := context.Background()
	first, err := c.Classify(ctx, "I can't log in")
	require.NoError(t, err)
	second, err := c.Classify(ctx, "I can't log in")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second call must be served from cache")
}

func TestCached_NormalizesQueries(t *testing.T) {
	_, client := setup(t)
	inner := &countingClassifier{result: core.Classification{
		Category:  core.CategoryBilling,
		Sentiment: core.SentimentNeutral,
	}}
	c := New(inner, client)

	ctx := context.Background()
	_, err := c.Classify(ctx, "Refund please")
	require.NoError(t, err)
	_, err = c.Classify(ctx, "  REFUND PLEASE ")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
}

func TestCached_TTLExpiry(t *testing.T) {
	mr, client := setup(t)
	inner := &countingClassifier{result: core.Classification{
		Category:  core.CategoryGeneral,
		Sentiment: core.SentimentNeutral,
	}}
	c := New(inner, client, func(o *Options) { o.TTL = time.Minute })

	ctx := context.Background()
	_, err := c.Classify(ctx, "hours?")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = c.Classify(ctx, "hours?")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCached_InnerErrorsAreNotCached(t *testing.T) {
	_, client := setup(t)
	inner := &countingClassifier{err: core.NewClassificationError("test", errors.New("down"))}
	c := New(inner, client)

	ctx := context.Background()
	_, err := c.Classify(ctx, "query")
	require.Error(t, err)
	assert.True(t, core.IsClassificationError(err))

	inner.err = nil
	inner.result = core.Classification{Category: core.CategoryGeneral, Sentiment: core.SentimentNeutral}
	got, err := c.Classify(ctx, "query")
	require.NoError(t, err)
	assert.Equal(t, core.CategoryGeneral, got.Category)
	assert.Equal(t, 2, inner.calls)
}

func TestCached_SurvivesRedisOutage(t *testing.T) {
	mr, client := setup(t)
	inner := &countingClassifier{result: core.Classification{
		Category:  core.CategoryTechnical,
		Sentiment: core.SentimentNegative,
	}}
	c := New(inner, client)

	mr.Close()

	got, err := c.Classify(context.Background(), "it crashed")
	require.NoError(t, err)
	assert.Equal(t, core.CategoryTechnical, got.Category)
}
