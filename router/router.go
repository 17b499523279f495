package router

import (
	"context"
	"strings"
	"time"

	"github.com/hupe1980/supportmesh/agent"
	"github.com/hupe1980/supportmesh/classifier"
	"github.com/hupe1980/supportmesh/core"
	"github.com/hupe1980/supportmesh/internal/keylock"
	"github.com/hupe1980/supportmesh/logging"
	"github.com/hupe1980/supportmesh/metrics"
	"github.com/hupe1980/supportmesh/policy"
	"github.com/hupe1980/supportmesh/session"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// SessionStore persists conversation state between turns.
	SessionStore core.SessionStore
	// Classifier labels queries with a category and a sentiment. Failures
	// are absorbed: the turn proceeds with default labels.
	Classifier core.Classifier
	// Technical, Billing and General override the built-in specialist
	// handlers.
	Technical core.Handler
	Billing   core.Handler
	General   core.Handler
	// Logger receives structured progress and outcome entries.
	Logger *logging.SupportLogger
	// Metrics receives turn and classification observations. Nil disables
	// instrumentation.
	Metrics *metrics.Collector
}

// Router coordinates one turn of the support workflow end to end. Public
// methods are safe for concurrent use; turns sharing a thread ID are
// serialized so each one observes the history left by the previous.
type Router struct {
	store      core.SessionStore
	classifier core.Classifier
	technical  core.Handler
	billing    core.Handler
	general    core.Handler
	logger     *logging.SupportLogger
	metrics    *metrics.Collector
	locks      *keylock.KeyedMutex
}

// New constructs a Router with optional overrides. The zero configuration
// is fully functional: in-memory sessions, rule-based classification and the
// built-in handlers.
func New(optFns ...func(o *Options)) *Router {
	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		Classifier:   classifier.NewRule(),
		Technical:    agent.NewTechnical(),
		Billing:      agent.NewBilling(),
		General:      agent.NewGeneral(),
		Logger:       logging.NewDiscardLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Router{
		store:      opts.SessionStore,
		classifier: opts.Classifier,
		technical:  opts.Technical,
		billing:    opts.Billing,
		general:    opts.General,
		logger:     opts.Logger.WithComponent("router"),
		metrics:    opts.Metrics,
		locks:      keylock.New(),
	}
}

// Process runs one complete turn for the thread and returns the updated
// state. The query and thread ID must be non-blank; classification failures
// degrade to default labels while persistence failures abort the turn.
func (r *Router) Process(ctx context.Context, threadID, query string) (*core.ConversationState, error) {
	if strings.TrimSpace(query) == "" {
		return nil, core.ErrEmptyQuery
	}
	if strings.TrimSpace(threadID) == "" {
		return nil, core.ErrEmptyThreadID
	}

	unlock := r.locks.Lock(threadID)
	defer unlock()

	started := time.Now()
	logger := r.logger.WithThread(threadID, core.NewID())

	state, err := r.initialize(ctx, threadID, query)
	if err != nil {
		logger.Error("Turn aborted, could not load thread state: %v", err)
		return nil, err
	}

	r.classify(ctx, state, logger)
	route := r.applyPolicy(state, logger)
	r.dispatch(route, state)

	if err := r.finalize(ctx, state, logger); err != nil {
		return nil, err
	}

	elapsed := time.Since(started)
	logger.LogTurnCompleted(string(state.AgentUsed), state.Escalated, elapsed)
	if r.metrics != nil {
		r.metrics.ObserveTurn(string(state.AgentUsed), string(state.Priority), state.Escalated, elapsed)
	}

	return state, nil
}

// initialize loads the thread state and resets the per-turn fields. Labels
// keep their defaults until classification runs.
func (r *Router) initialize(ctx context.Context, threadID, query string) (*core.ConversationState, error) {
	state, err := r.store.Load(ctx, threadID)
	if err != nil {
		return nil, err
	}

	state.Query = query
	state.Response = ""
	state.AgentUsed = core.AgentCoordinator
	state.Escalated = false
	state.Category = core.CategoryGeneral
	state.Sentiment = core.SentimentNeutral
	state.Priority = core.PriorityLow
	state.Timestamp = time.Now().UTC()

	return state, nil
}

// classify labels the query. A classifier failure is recoverable: the turn
// continues with the default labels already present on the state.
func (r *Router) classify(ctx context.Context, state *core.ConversationState, logger *logging.SupportLogger) {
	started := time.Now()
	cls, err := r.classifier.Classify(ctx, state.Query)
	elapsed := time.Since(started)

	degraded := err != nil
	if degraded {
		logger.Warn("Classification failed, falling back to default labels: %v", err)
	} else {
		state.Category = cls.Category
		state.Sentiment = cls.Sentiment
	}

	logger.LogClassification(string(state.Category), string(state.Sentiment), elapsed, degraded)
	if r.metrics != nil {
		r.metrics.ObserveClassification(elapsed, degraded)
	}
}

// applyPolicy derives the priority and the dispatch route from the labels.
// An escalate route marks the state before any handler runs.
func (r *Router) applyPolicy(state *core.ConversationState, logger *logging.SupportLogger) core.Route {
	state.Priority = policy.Priority(state.Category, state.Sentiment)
	route := policy.Route(state.Category, state.Sentiment)
	if route == core.RouteEscalate {
		state.Escalated = true
	}

	logger.LogRouting(string(route), string(state.Priority), state.Escalated)

	return route
}

// dispatch runs the specialist handler for the route. Escalated turns still
// get a substantive answer from the category handler; only the attribution
// changes.
func (r *Router) dispatch(route core.Route, state *core.ConversationState) {
	handler := r.handlerFor(route, state.Category)
	result := handler.Handle(state.Query, state)

	state.Response = result.Response
	state.AgentUsed = handler.Kind()
	if result.Escalated {
		state.Escalated = true
	}
	if route == core.RouteEscalate {
		state.AgentUsed = core.AgentEscalation
	}
}

// finalize appends the turn to the history and persists the state. A failed
// save aborts the turn so the caller never sees state the store does not.
func (r *Router) finalize(ctx context.Context, state *core.ConversationState, logger *logging.SupportLogger) error {
	state.AppendTurn(state.Query, state.Response)

	if err := r.store.Save(ctx, state); err != nil {
		logger.Error("Turn aborted, could not persist thread state: %v", err)
		if r.metrics != nil {
			r.metrics.ObserveSaveFailure()
		}
		return err
	}

	return nil
}

func (r *Router) handlerFor(route core.Route, category core.Category) core.Handler {
	if route == core.RouteEscalate {
		switch category {
		case core.CategoryTechnical:
			return r.technical
		case core.CategoryBilling:
			return r.billing
		default:
			return r.general
		}
	}

	switch route {
	case core.RouteTechnical:
		return r.technical
	case core.RouteBilling:
		return r.billing
	default:
		return r.general
	}
}
