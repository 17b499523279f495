// Package supportmesh provides a high-level façade over the router and
// service abstractions (sessions, classification & logging) for building a
// multi-agent customer support workflow. Most applications interact with
// this package by:
//  1. Creating a SupportMesh via New() (optionally overriding the default
//     in-memory services)
//  2. Calling Process() once per customer message
//
// The façade delegates orchestration to router.Router while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply a durable session
// store, a model-backed classifier and a structured logger.
package supportmesh

import (
	"context"
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	openaisdk "github.com/openai/openai-go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hupe1980/supportmesh/classifier"
	anthropicclassifier "github.com/hupe1980/supportmesh/classifier/anthropic"
	"github.com/hupe1980/supportmesh/classifier/cached"
	openaiclassifier "github.com/hupe1980/supportmesh/classifier/openai"
	"github.com/hupe1980/supportmesh/config"
	"github.com/hupe1980/supportmesh/core"
	"github.com/hupe1980/supportmesh/logging"
	"github.com/hupe1980/supportmesh/metrics"
	"github.com/hupe1980/supportmesh/router"
	"github.com/hupe1980/supportmesh/session"
	dynamodbsession "github.com/hupe1980/supportmesh/session/dynamodb"
	redissession "github.com/hupe1980/supportmesh/session/redis"
	sqlitesession "github.com/hupe1980/supportmesh/session/sqlite"
)

// Options configures the SupportMesh instance.
type Options struct {
	// SessionStore persists conversation state (defaults to in-memory).
	SessionStore core.SessionStore

	// Classifier labels queries (defaults to the rule-based classifier).
	Classifier core.Classifier

	// Logger receives structured progress entries (defaults to discard).
	Logger *logging.SupportLogger

	// Metrics enables Prometheus instrumentation when set.
	Metrics *metrics.Collector
}

// SupportMesh is the high-level façade aggregating the router and its
// services.
type SupportMesh struct {
	opts   Options
	router *router.Router
}

// New creates a new SupportMesh instance with optional overrides. Any unset
// service is initialized with a local implementation.
func New(optFns ...func(o *Options)) *SupportMesh {
	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		Classifier:   classifier.NewRule(),
		Logger:       logging.NewDiscardLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	r := router.New(func(o *router.Options) {
		o.SessionStore = opts.SessionStore
		o.Classifier = opts.Classifier
		o.Logger = opts.Logger
		o.Metrics = opts.Metrics
	})

	return &SupportMesh{opts: opts, router: r}
}

// NewFromConfig assembles a SupportMesh from a loaded configuration:
// session backend, classifier backend (with optional label cache) and
// logger. Additional option functions run after the config-derived wiring,
// so callers can still inject metrics or replace single services.
func NewFromConfig(ctx context.Context, cfg *config.Config, optFns ...func(o *Options)) (*SupportMesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := storeFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	oracle := classifierFromConfig(cfg)
	logger := loggerFromConfig(cfg)

	if cfg.Classifier.Cache.Enabled {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.Classifier.Cache.Addr})
		oracle = cached.New(oracle, client, func(o *cached.Options) {
			if cfg.Classifier.Cache.KeyPrefix != "" {
				o.KeyPrefix = cfg.Classifier.Cache.KeyPrefix
			}
			if cfg.Classifier.Cache.TTL > 0 {
				o.TTL = cfg.Classifier.Cache.TTL
			}
			o.Logger = logger.WithComponent("classifier_cache")
		})
	}

	merged := append([]func(o *Options){func(o *Options) {
		o.SessionStore = store
		o.Classifier = oracle
		o.Logger = logger
	}}, optFns...)

	return New(merged...), nil
}

func storeFromConfig(ctx context.Context, cfg *config.Config) (core.SessionStore, error) {
	switch cfg.Session.Backend {
	case "memory":
		return session.NewInMemoryStore(), nil
	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
		})
		return redissession.New(client, func(o *redissession.Options) {
			if cfg.Session.Redis.KeyPrefix != "" {
				o.KeyPrefix = cfg.Session.Redis.KeyPrefix
			}
			o.TTL = cfg.Session.Redis.TTL
		}), nil
	case "sqlite":
		return sqlitesession.Open(cfg.Session.SQLite.Path)
	case "dynamodb":
		return dynamodbsession.Open(ctx, cfg.Session.DynamoDB.Table, func(o *dynamodbsession.Options) {
			o.TTL = cfg.Session.DynamoDB.TTL
		})
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func classifierFromConfig(cfg *config.Config) core.Classifier {
	switch cfg.Classifier.Backend {
	case "openai":
		return openaiclassifier.NewClassifier(func(o *openaiclassifier.Options) {
			if cfg.Classifier.Model != "" {
				o.Model = openaisdk.ChatModel(cfg.Classifier.Model)
			}
		})
	case "anthropic":
		return anthropicclassifier.NewClassifier(func(o *anthropicclassifier.Options) {
			if cfg.Classifier.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Classifier.Model)
			}
			o.APIKey = cfg.Classifier.APIKey
		})
	default:
		return classifier.NewRule()
	}
}

func loggerFromConfig(cfg *config.Config) *logging.SupportLogger {
	lc := logging.DefaultLoggerConfig()
	switch cfg.Logging.Level {
	case "debug":
		lc.Level = logging.LogLevelDebug
	case "warn":
		lc.Level = logging.LogLevelWarn
	case "error":
		lc.Level = logging.LogLevelError
	default:
		lc.Level = logging.LogLevelInfo
	}
	lc.Format = cfg.Logging.Format
	lc.AddSource = cfg.Logging.AddSource
	return logging.NewLogger(lc)
}

// Process runs one support turn for the thread and returns the updated
// conversation state.
func (m *SupportMesh) Process(ctx context.Context, threadID, query string) (*core.ConversationState, error) {
	return m.router.Process(ctx, threadID, query)
}
