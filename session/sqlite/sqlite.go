// Package sqlite provides a durable core.SessionStore backed by a local
// SQLite database via GORM (pure-Go driver, no cgo). Each thread maps to
// one row holding the JSON-encoded conversation state, which keeps the
// schema stable as the state record evolves.
package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hupe1980/supportmesh/core"
)

// threadRecord is the persisted row shape.
type threadRecord struct {
	ThreadID  string `gorm:"primaryKey"`
	State     []byte
	UpdatedAt time.Time
}

// TableName pins the table name independent of GORM pluralization rules.
func (threadRecord) TableName() string { return "threads" }

// Store persists conversation state in SQLite.
type Store struct {
	db *gorm.DB
}

// Open creates a store on the database file at path, creating the schema if
// needed. Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}
	return New(db)
}

// New creates a store on an existing GORM handle, migrating the schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&threadRecord{}); err != nil {
		return nil, fmt.Errorf("migrate threads table: %w", err)
	}
	return &Store{db: db}, nil
}

// Load fetches and decodes the state for a thread. Unknown threads yield a
// freshly initialized state, not an error.
func (s *Store) Load(ctx context.Context, threadID string) (*core.ConversationState, error) {
	var rec threadRecord
	err := s.db.WithContext(ctx).First(&rec, "thread_id = ?", threadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.NewConversationState(threadID), nil
	}
	if err != nil {
		return nil, core.NewPersistenceError(threadID, "load", err)
	}

	var state core.ConversationState
	if err := json.Unmarshal(rec.State, &state); err != nil {
		return nil, core.NewPersistenceError(threadID, "load", fmt.Errorf("decode state: %w", err))
	}
	return &state, nil
}

// Save upserts the row for the thread, last-writer-wins.
func (s *Store) Save(ctx context.Context, state *core.ConversationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return core.NewPersistenceError(state.ThreadID, "save", fmt.Errorf("encode state: %w", err))
	}
	rec := threadRecord{ThreadID: state.ThreadID, State: raw, UpdatedAt: time.Now().UTC()}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "thread_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return core.NewPersistenceError(state.ThreadID, "save", err)
	}
	return nil
}
