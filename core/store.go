package core

import "context"

// SessionStore persists one ConversationState per thread.
//
// Contract:
//   - Load for an unknown thread returns a freshly initialized state, not an
//     error.
//   - Save is last-writer-wins per thread; the router serializes turns per
//     thread so this is safe.
//   - Load after Save on the same thread reflects the saved value.
//   - Implementations must not retain references to the saved state; clone
//     or serialize on the way in and out.
//
// Retention and eviction (TTLs, cleanup jobs) are backend concerns; the
// orchestration core never deletes state.
type SessionStore interface {
	Load(ctx context.Context, threadID string) (*ConversationState, error)
	Save(ctx context.Context, state *ConversationState) error
}
