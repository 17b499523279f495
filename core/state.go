package core

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry of a conversation history. Role is "user" or
// "assistant"; history is append-only and ordered oldest first.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationState is the single record tracked per support thread. One
// instance exists per ThreadID; the router mutates it exactly once per turn
// and the session store owns its persistence.
//
// Contract:
//   - Category, Sentiment and Priority are always set together before a
//     handler runs; a handler never observes a partially labelled state.
//   - Escalated is monotonic within a turn: once set it is never reset.
//   - History grows by exactly one user and one assistant entry per turn.
//   - Clone performs deep copies so persisted snapshots cannot be mutated
//     through retained references.
type ConversationState struct {
	ThreadID  string    `json:"thread_id"`
	Query     string    `json:"query"`
	Category  Category  `json:"category"`
	Sentiment Sentiment `json:"sentiment"`
	Priority  Priority  `json:"priority"`
	Response  string    `json:"response"`
	AgentUsed AgentKind `json:"agent_used"`
	Escalated bool      `json:"escalated"`
	Timestamp time.Time `json:"timestamp"`
	History   []Message `json:"history"`
}

// NewConversationState creates the initial state for a thread: safe default
// labels, empty history.
func NewConversationState(threadID string) *ConversationState {
	return &ConversationState{
		ThreadID:  threadID,
		Category:  CategoryGeneral,
		Sentiment: SentimentNeutral,
		Priority:  PriorityLow,
		AgentUsed: AgentCoordinator,
		Timestamp: time.Now().UTC(),
		History:   []Message{},
	}
}

// Clone returns a deep copy of the state safe for independent mutation.
func (s *ConversationState) Clone() *ConversationState {
	clone := *s
	clone.History = make([]Message, len(s.History))
	copy(clone.History, s.History)
	return &clone
}

// AppendTurn records the completed turn in the history: one user entry for
// the query followed by one assistant entry for the response.
func (s *ConversationState) AppendTurn(query, response string) {
	now := time.Now().UTC()
	s.History = append(s.History,
		Message{Role: "user", Content: query, Timestamp: now},
		Message{Role: "assistant", Content: response, Timestamp: now},
	)
}

// Turns returns the number of completed turns recorded in the history.
func (s *ConversationState) Turns() int { return len(s.History) / 2 }

// Summary returns a compact log-friendly view of the state. The query is
// truncated to 50 runes.
func (s *ConversationState) Summary() map[string]any {
	query := s.Query
	if runes := []rune(query); len(runes) > 50 {
		query = string(runes[:50]) + "..."
	}
	return map[string]any{
		"thread_id":  s.ThreadID,
		"query":      query,
		"category":   s.Category,
		"sentiment":  s.Sentiment,
		"priority":   s.Priority,
		"agent_used": s.AgentUsed,
		"escalated":  s.Escalated,
	}
}

// NewID generates a unique identifier used to correlate turns in logs.
func NewID() string { return uuid.NewString() }
