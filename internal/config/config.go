// Package config loads command line tool settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "BOXOFFICE"

// Config holds settings that are not worth a command line flag.
type Config struct {
	Logging LoggingConfig `envconfig:"LOG"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"warn"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// Load reads BOXOFFICE_* variables and applies defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}
