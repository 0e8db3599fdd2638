// Package config loads application settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the notebook's settings. Environment variables use the
// RECEITAI prefix; CLI flags override individual fields.
type Config struct {
	// DBPath is the SQLite database file. Created on first use.
	DBPath string `envconfig:"DB_PATH" default:"receitas.db"`

	// LogLevel controls diagnostic verbosity: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from RECEITAI_* environment variables,
// applying defaults for anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("receitai", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unsupported RECEITAI_LOG_LEVEL: %s", c.LogLevel)
	}
}
