// SPDX-License-Identifier: EPL-2.0

// Package config loads the YAML configuration of the speechprep command.
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ik5/speechprep/preprocess"
)

// Config is the complete command configuration.
type Config struct {
	Preprocess preprocess.Config `yaml:"preprocess"`
	Invert     InvertConfig      `yaml:"invert"`
	Logging    LoggingConfig     `yaml:"logging"`
}

// InvertConfig controls Griffin-Lim reconstruction of spectrograms.
type InvertConfig struct {
	Iterations int `yaml:"iterations"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// Output is stdout, stderr or a file path.
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Preprocess: preprocess.DefaultConfig(),
		Invert:     InvertConfig{Iterations: 32},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads path over the defaults and validates the result, so a file
// only needs the keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Preprocess.Validate(); err != nil {
		return fmt.Errorf("preprocess config: %w", err)
	}

	if err := c.Invert.Validate(); err != nil {
		return fmt.Errorf("invert config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

func (i *InvertConfig) Validate() error {
	if i.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", i.Iterations)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level) {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	if l.Format != "json" && l.Format != "text" {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	if l.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}

	return nil
}
