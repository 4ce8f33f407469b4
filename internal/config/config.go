// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the studykeep service.
// Environment variables are parsed from the STUDYKEEP_ prefix, e.g.
// STUDYKEEP_HTTP_PORT, STUDYKEEP_STORE_DRIVER.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Key-value snapshot store: sqlite (default), postgres or memory.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:""`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Optional quote-of-the-day fetch at startup. Best effort; failure
	// only means the quote panel is absent for the session.
	QuoteEnabled bool   `envconfig:"QUOTE_ENABLED" default:"true"`
	QuoteURL     string `envconfig:"QUOTE_URL" default:"https://api.quotable.io/random"`
}

// ResolveDefaults validates the driver selection and derives the
// sqlite path when unset.
func (c *Config) ResolveDefaults() error {
	switch c.StoreDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			c.SQLitePath = filepath.Join("data", "studykeep.db")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("STORE_DRIVER postgres requires POSTGRES_DSN")
		}
	case "memory":
		// ephemeral, nothing to derive
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	return nil
}

// New creates a Config by parsing STUDYKEEP_-prefixed environment
// variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("STUDYKEEP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewForTesting creates a config for tests: in-memory store, quote
// fetch disabled.
func NewForTesting() *Config {
	return &Config{
		Environment:  EnvTesting,
		HTTPPort:     8080,
		StoreDriver:  "memory",
		QuoteEnabled: false,
	}
}

// IsTesting reports whether the environment is set to testing.
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction reports whether the environment is set to production.
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP listen address.
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }
