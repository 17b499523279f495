package router

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supportmesh/core"
	"github.com/hupe1980/supportmesh/session"
)

// failingClassifier always errors, exercising the default-label fallback.
type failingClassifier struct{}

func (failingClassifier) Classify(context.Context, string) (core.Classification, error) {
	return core.Classification{}, core.NewClassificationError("test", errors.New("backend down"))
}

// flakyStore wraps the in-memory store with injectable failures.
type flakyStore struct {
	inner    *session.InMemoryStore
	failLoad bool
	failSave bool
}

func (s *flakyStore) Load(ctx context.Context, threadID string) (*core.ConversationState, error) {
	if s.failLoad {
		return nil, core.NewPersistenceError(threadID, "load", errors.New("store down"))
	}
	return s.inner.Load(ctx, threadID)
}

func (s *flakyStore) Save(ctx context.Context, state *core.ConversationState) error {
	if s.failSave {
		return core.NewPersistenceError(state.ThreadID, "save", errors.New("store down"))
	}
	return s.inner.Save(ctx, state)
}

func TestProcess_TechnicalQuery(t *testing.T) {
	r := New()

	state, err := r.Process(context.Background(), "t-1", "I can't log in to the system")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryTechnical, state.Category)
	assert.Equal(t, core.SentimentNeutral, state.Sentiment)
	assert.Equal(t, core.PriorityMedium, state.Priority)
	assert.Equal(t, core.AgentTechnical, state.AgentUsed)
	assert.False(t, state.Escalated)
	assert.Contains(t, state.Response, "resetting the password")
}

func TestProcess_BillingQuery(t *testing.T) {
	r := New()

	state, err := r.Process(context.Background(), "t-1", "I was charged twice on my card")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryBilling, state.Category)
	assert.Equal(t, core.PriorityMedium, state.Priority)
	assert.Equal(t, core.AgentBilling, state.AgentUsed)
	assert.Contains(t, state.Response, "chargebacks")
}

func TestProcess_GeneralQuery(t *testing.T) {
	r := New()

	state, err := r.Process(context.Background(), "t-1", "What are your opening hours?")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryGeneral, state.Category)
	assert.Equal(t, core.PriorityLow, state.Priority)
	assert.Equal(t, core.AgentGeneral, state.AgentUsed)
	assert.Contains(t, state.Response, "Monday to Friday")
}

func TestProcess_NegativeQueryEscalates(t *testing.T) {
	r := New()

	state, err := r.Process(context.Background(), "t-1", "The system crashed and I lost all my data, I'm furious!")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryTechnical, state.Category)
	assert.Equal(t, core.SentimentNegative, state.Sentiment)
	assert.Equal(t, core.PriorityHigh, state.Priority)
	assert.Equal(t, core.AgentEscalation, state.AgentUsed)
	assert.True(t, state.Escalated)
	// The category handler still produces the substantive answer.
	assert.Contains(t, state.Response, "level-2 specialist")
}

func TestProcess_HandlerRaisedEscalationKeepsAgentKind(t *testing.T) {
	r := New()

	// Neutral tone, so the route stays technical, but the severity check in
	// the handler flags the turn.
	state, err := r.Process(context.Background(), "t-1", "The system crashed during the update")
	require.NoError(t, err)

	assert.Equal(t, core.AgentTechnical, state.AgentUsed)
	assert.Equal(t, core.PriorityMedium, state.Priority)
	assert.True(t, state.Escalated)
}

func TestProcess_ValidatesInput(t *testing.T) {
	r := New()
	ctx := context.Background()

	_, err := r.Process(ctx, "t-1", "   ")
	assert.ErrorIs(t, err, core.ErrEmptyQuery)

	_, err = r.Process(ctx, "", "hello")
	assert.ErrorIs(t, err, core.ErrEmptyThreadID)
}

func TestProcess_ClassifierFailureDegrades(t *testing.T) {
	store := session.NewInMemoryStore()
	r := New(func(o *Options) {
		o.SessionStore = store
		o.Classifier = failingClassifier{}
	})

	state, err := r.Process(context.Background(), "t-1", "I can't log in to the system")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryGeneral, state.Category)
	assert.Equal(t, core.SentimentNeutral, state.Sentiment)
	assert.Equal(t, core.PriorityLow, state.Priority)
	assert.Equal(t, core.AgentGeneral, state.AgentUsed)

	// The degraded turn is still persisted.
	saved, err := store.Load(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Len(t, saved.History, 2)
}

func TestProcess_LoadFailureAborts(t *testing.T) {
	r := New(func(o *Options) {
		o.SessionStore = &flakyStore{inner: session.NewInMemoryStore(), failLoad: true}
	})

	_, err := r.Process(context.Background(), "t-1", "hello")
	require.Error(t, err)
	assert.True(t, core.IsPersistenceError(err))
}

func TestProcess_SaveFailureAborts(t *testing.T) {
	r := New(func(o *Options) {
		o.SessionStore = &flakyStore{inner: session.NewInMemoryStore(), failSave: true}
	})

	_, err := r.Process(context.Background(), "t-1", "hello")
	require.Error(t, err)
	assert.True(t, core.IsPersistenceError(err))
}

func TestProcess_HistoryAccumulatesAcrossTurns(t *testing.T) {
	r := New()
	ctx := context.Background()

	first, err := r.Process(ctx, "t-1", "I can't log in to the system")
	require.NoError(t, err)
	require.Len(t, first.History, 2)

	second, err := r.Process(ctx, "t-1", "What are your opening hours?")
	require.NoError(t, err)
	require.Len(t, second.History, 4)

	assert.Equal(t, "user", second.History[0].Role)
	assert.Equal(t, "I can't log in to the system", second.History[0].Content)
	assert.Equal(t, "assistant", second.History[1].Role)
	assert.Equal(t, "What are your opening hours?", second.History[2].Content)
}

func TestProcess_RepeatedQueryIsStableExceptHistory(t *testing.T) {
	r := New()
	ctx := context.Background()

	first, err := r.Process(ctx, "t-1", "I can't log in to the system")
	require.NoError(t, err)

	second, err := r.Process(ctx, "t-1", "I can't log in to the system")
	require.NoError(t, err)

	assert.Equal(t, first.Category, second.Category)
	assert.Equal(t, first.Sentiment, second.Sentiment)
	assert.Equal(t, first.Priority, second.Priority)
	assert.Equal(t, first.AgentUsed, second.AgentUsed)
	assert.Equal(t, first.Response, second.Response)
	assert.Len(t, first.History, 2)
	assert.Len(t, second.History, 4)
}

func TestProcess_PerTurnFieldsReset(t *testing.T) {
	r := New()
	ctx := context.Background()

	_, err := r.Process(ctx, "t-1", "The system crashed and I lost all my data, I'm furious!")
	require.NoError(t, err)

	state, err := r.Process(ctx, "t-1", "What are your opening hours?")
	require.NoError(t, err)

	assert.Equal(t, core.CategoryGeneral, state.Category)
	assert.Equal(t, core.PriorityLow, state.Priority)
	assert.Equal(t, core.AgentGeneral, state.AgentUsed)
	assert.False(t, state.Escalated)
	assert.Len(t, state.History, 4)
}

func TestProcess_ReturnedStateIsDetached(t *testing.T) {
	r := New()
	ctx := context.Background()

	state, err := r.Process(ctx, "t-1", "hello there")
	require.NoError(t, err)

	state.History[0].Content = "tampered"
	state.Response = "tampered"

	reloaded, err := r.Process(ctx, "t-1", "What are your opening hours?")
	require.NoError(t, err)
	assert.Equal(t, "hello there", reloaded.History[0].Content)
}

func TestProcess_SameThreadTurnsAreSerialized(t *testing.T) {
	r := New()
	ctx := context.Background()

	const turns = 25

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Process(ctx, "t-1", fmt.Sprintf("question %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	state, err := r.Process(ctx, "t-1", "What are your opening hours?")
	require.NoError(t, err)
	assert.Len(t, state.History, (turns+1)*2)
}

func TestProcess_ThreadsAreIndependent(t *testing.T) {
	r := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			threadID := fmt.Sprintf("t-%d", i)
			_, err := r.Process(ctx, threadID, "I can't log in to the system")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		state, err := r.Process(ctx, fmt.Sprintf("t-%d", i), "What are your opening hours?")
		require.NoError(t, err)
		assert.Len(t, state.History, 4)
	}
}
