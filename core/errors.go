package core

import (
	"errors"
	"fmt"
)

// Pre-flight validation errors. Turns failing these never enter the state
// machine.
var (
	// ErrEmptyQuery rejects turns without user text.
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrEmptyThreadID rejects turns without a conversation identifier.
	ErrEmptyThreadID = errors.New("thread id must not be empty")
)

// ClassificationError reports that a classification backend could not
// produce valid labels for a query. It is recoverable: the router absorbs it
// by falling back to General/Neutral and the turn proceeds.
type ClassificationError struct {
	Backend string
	Err     error
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed (backend %s): %v", e.Backend, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *ClassificationError) Unwrap() error { return e.Err }

// NewClassificationError wraps err as a recoverable classification failure.
func NewClassificationError(backend string, err error) *ClassificationError {
	return &ClassificationError{Backend: backend, Err: err}
}

// PersistenceError reports a session store failure. It is fatal to the turn:
// a turn whose result cannot be persisted must not be reported as successful.
type PersistenceError struct {
	ThreadID string
	Op       string // "load" or "save"
	Err      error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("session %s failed for thread %s: %v", e.Op, e.ThreadID, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistenceError wraps a store failure with thread and operation context.
func NewPersistenceError(threadID, op string, err error) *PersistenceError {
	return &PersistenceError{ThreadID: threadID, Op: op, Err: err}
}

// IsClassificationError reports whether err is (or wraps) a classification
// failure.
func IsClassificationError(err error) bool {
	var ce *ClassificationError
	return errors.As(err, &ce)
}

// IsPersistenceError reports whether err is (or wraps) a persistence failure.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
