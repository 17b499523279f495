// Package cached provides a Redis read-through cache wrapping any
// core.Classifier. Classification of a given query is deterministic
// (temperature-zero models, rule tables), so repeated queries can skip the
// backend entirely. Cache failures are never surfaced: a broken Redis
// degrades to calling the inner classifier directly.
package cached

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hupe1980/supportmesh/classifier"
	"github.com/hupe1980/supportmesh/core"
	"github.com/hupe1980/supportmesh/logging"
)

// Options configure the cache layer.
type Options struct {
	// TTL bounds how long a label pair is reused.
	TTL time.Duration
	// KeyPrefix namespaces cache keys in a shared Redis.
	KeyPrefix string
	// Logger receives cache diagnostics.
	Logger logging.Logger
}

// Classifier is a read-through label cache over an inner core.Classifier.
type Classifier struct {
	inner  core.Classifier
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger logging.Logger
}

// New wraps inner with a Redis label cache.
func New(inner core.Classifier, client *redis.Client, optFns ...func(o *Options)) *Classifier {
	opts := Options{
		TTL:       time.Hour,
		KeyPrefix: "supportmesh:classify:",
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{
		inner:  inner,
		client: client,
		ttl:    opts.TTL,
		prefix: opts.KeyPrefix,
		logger: opts.Logger,
	}
}

// Classify returns cached labels when present, otherwise consults the inner
// classifier and stores the result best-effort.
func (c *Classifier) Classify(ctx context.Context, text string) (core.Classification, error) {
	key := c.key(text)

	cachedVal, err := c.client.Get(ctx, key).Result()
	if err == nil {
		if labels, perr := classifier.ParseLabels(cachedVal); perr == nil {
			return labels, nil
		}
		// Corrupt entry: fall through and overwrite below.
		c.logger.Warn("dropping unparseable cached labels key=%s", key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("classification cache read failed: %v", err)
	}

	labels, err := c.inner.Classify(ctx, text)
	if err != nil {
		return core.Classification{}, err
	}

	if err := c.client.Set(ctx, key, classifier.FormatLabels(labels), c.ttl).Err(); err != nil {
		c.logger.Warn("classification cache write failed: %v", err)
	}
	return labels, nil
}

// key hashes the normalized query so arbitrarily long customer text maps to
// a fixed-size cache key.
func (c *Classifier) key(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	sum := sha256.Sum256([]byte(normalized))
	return c.prefix + hex.EncodeToString(sum[:])
}
