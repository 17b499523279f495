// Package redis provides a core.SessionStore backed by Redis. Conversation
// state is serialized as one JSON value per thread; retention is delegated
// to a configurable key TTL refreshed on every save (zero disables expiry).
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hupe1980/supportmesh/core"
)

// Options configure the Redis session store.
type Options struct {
	// KeyPrefix namespaces thread keys in a shared Redis.
	KeyPrefix string
	// TTL is the sliding retention window per thread; zero keeps threads
	// forever.
	TTL time.Duration
}

// Store persists conversation state in Redis.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Redis session store from an existing client.
func New(client *redis.Client, optFns ...func(o *Options)) *Store {
	opts := Options{
		KeyPrefix: "supportmesh:thread:",
		TTL:       0,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{client: client, prefix: opts.KeyPrefix, ttl: opts.TTL}
}

// Load fetches and decodes the state for a thread. Unknown threads yield a
// freshly initialized state, not an error.
func (s *Store) Load(ctx context.Context, threadID string) (*core.ConversationState, error) {
	raw, err := s.client.Get(ctx, s.prefix+threadID).Bytes()
	if errors.Is(err, redis.Nil) {
		return core.NewConversationState(threadID), nil
	}
	if err != nil {
		return nil, core.NewPersistenceError(threadID, "load", err)
	}

	var state core.ConversationState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, core.NewPersistenceError(threadID, "load", fmt.Errorf("decode state: %w", err))
	}
	return &state, nil
}

// Save encodes and stores the state, refreshing the retention TTL.
func (s *Store) Save(ctx context.Context, state *core.ConversationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return core.NewPersistenceError(state.ThreadID, "save", fmt.Errorf("encode state: %w", err))
	}
	if err := s.client.Set(ctx, s.prefix+state.ThreadID, raw, s.ttl).Err(); err != nil {
		return core.NewPersistenceError(state.ThreadID, "save", err)
	}
	return nil
}
