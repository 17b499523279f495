package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassificationError_Unwrap(t *testing.T) {
	cause := errors.New("backend unreachable")
	err := NewClassificationError("openai", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "openai")
	assert.True(t, IsClassificationError(err))
	assert.True(t, IsClassificationError(fmt.Errorf("turn: %w", err)))
	assert.False(t, IsClassificationError(cause))
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPersistenceError("t-1", "save", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "t-1")
	assert.Contains(t, err.Error(), "save")
	assert.True(t, IsPersistenceError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsPersistenceError(cause))
}
