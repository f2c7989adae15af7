// Package config loads translator settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable limits and output settings of the
// translator CLI.
type Config struct {
	// MaxAmbiguousEffects caps the per-operator exponent of safe
	// expansion; an operator past the cap fails the run instead of
	// exhausting memory.
	MaxAmbiguousEffects int `yaml:"max_ambiguous_effects"`
	// MaxOperators caps the total expanded operator count (0 = no cap).
	MaxOperators int `yaml:"max_operators"`
	// Output is the default path for the finite-domain task file.
	Output string `yaml:"output"`
	// LogLevel is a zerolog level name: disabled, error, warn, info, debug.
	LogLevel string `yaml:"log_level"`
	// EventLog, when set, receives per-stage JSONL events.
	EventLog string `yaml:"event_log"`
	// HistoryDB, when set, records run summaries in a SQLite database.
	HistoryDB string `yaml:"history_db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxAmbiguousEffects: 20,
		Output:              "output.sas",
		LogLevel:            "warn",
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.MaxAmbiguousEffects < 0 {
		return fmt.Errorf("config: max_ambiguous_effects must be >= 0, got %d", c.MaxAmbiguousEffects)
	}
	if c.MaxOperators < 0 {
		return fmt.Errorf("config: max_operators must be >= 0, got %d", c.MaxOperators)
	}
	if c.Output == "" {
		return fmt.Errorf("config: output path must not be empty")
	}
	switch c.LogLevel {
	case "", "disabled", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}
