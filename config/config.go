// Package config loads the YAML configuration selecting the session
// backend, the classification backend and the logging setup. Values are
// layered: defaults, then the file, then ${VAR} expansion so secrets stay
// out of the file itself.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	Session    SessionConfig    `yaml:"session"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SessionConfig selects and configures the session store backend.
type SessionConfig struct {
	// Backend is one of memory, redis, sqlite, dynamodb.
	Backend string `yaml:"backend"`

	Redis struct {
		Addr      string        `yaml:"addr"`
		Password  string        `yaml:"password"`
		DB        int           `yaml:"db"`
		KeyPrefix string        `yaml:"key_prefix"`
		TTL       time.Duration `yaml:"ttl"`
	} `yaml:"redis"`

	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`

	DynamoDB struct {
		Table string        `yaml:"table"`
		TTL   time.Duration `yaml:"ttl"`
	} `yaml:"dynamodb"`
}

// ClassifierConfig selects and configures the classification backend.
type ClassifierConfig struct {
	// Backend is one of rule, openai, anthropic.
	Backend string `yaml:"backend"`
	// Model overrides the backend's default model identifier.
	Model string `yaml:"model"`
	// APIKey supports ${VAR} expansion.
	APIKey string `yaml:"api_key"`

	Cache struct {
		// Enabled turns on the Redis read-through label cache.
		Enabled   bool          `yaml:"enabled"`
		Addr      string        `yaml:"addr"`
		KeyPrefix string        `yaml:"key_prefix"`
		TTL       time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is json or text.
	Format string `yaml:"format"`
	// AddSource includes file:line in every entry.
	AddSource bool `yaml:"add_source"`
}

// Default returns the zero-setup configuration: in-memory sessions, the
// rule classifier, JSON info logging.
func Default() *Config {
	cfg := &Config{}
	cfg.Session.Backend = "memory"
	cfg.Session.Redis.Addr = "localhost:6379"
	cfg.Session.SQLite.Path = "supportmesh.db"
	cfg.Classifier.Backend = "rule"
	cfg.Classifier.Cache.Addr = "localhost:6379"
	cfg.Classifier.Cache.TTL = time.Hour
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	return cfg
}

// Load reads the YAML file at path on top of the defaults. A missing file
// is not an error: the defaults apply unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the enum-valued fields.
func (c *Config) Validate() error {
	switch c.Session.Backend {
	case "memory", "redis", "sqlite", "dynamodb":
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}

	switch c.Classifier.Backend {
	case "rule", "openai", "anthropic":
	default:
		return fmt.Errorf("unknown classifier backend %q", c.Classifier.Backend)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	if c.Session.Backend == "dynamodb" && c.Session.DynamoDB.Table == "" {
		return fmt.Errorf("session backend dynamodb requires a table name")
	}

	return nil
}
