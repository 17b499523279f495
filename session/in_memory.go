package session

import (
	"context"
	"sync"

	"github.com/hupe1980/supportmesh/core"
)

// InMemoryStore is a volatile core.SessionStore keeping conversation state
// in a process local map. It is safe for concurrent access and best suited
// for tests or ephemeral demo setups. Each state crossing the boundary is
// cloned to prevent external mutation of internal records.
type InMemoryStore struct {
	mu      sync.RWMutex
	threads map[string]*core.ConversationState
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{threads: make(map[string]*core.ConversationState)}
}

// Load returns a clone of the stored state, or a freshly initialized state
// for an unknown thread.
func (s *InMemoryStore) Load(_ context.Context, threadID string) (*core.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.threads[threadID]; ok {
		return st.Clone(), nil
	}
	return core.NewConversationState(threadID), nil
}

// Save stores a clone of the provided state snapshot, last-writer-wins.
func (s *InMemoryStore) Save(_ context.Context, state *core.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[state.ThreadID] = state.Clone()
	return nil
}

// Len reports the number of threads currently held. Test helper.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.threads)
}
