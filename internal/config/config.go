// Package config loads the YAML configuration of the mazesolve command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats accepted by OutputConfig.Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all mazesolve configuration.
type Config struct {
	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Report rendering
	Output OutputConfig `yaml:"output"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder, stack traces on warn
}

// OutputConfig controls what a solve prints.
type OutputConfig struct {
	Format   string `yaml:"format"`    // text, yaml
	ShowPath bool   `yaml:"show_path"` // include the coordinate list
	ShowGrid bool   `yaml:"show_grid"` // include the rendered maze
}

// Default returns the built-in configuration: warn-level production
// logging and the full text report.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:       "warn",
			Development: false,
		},
		Output: OutputConfig{
			Format:   FormatText,
			ShowPath: true,
			ShowGrid: true,
		},
	}
}

// Load reads configuration from a YAML file over the defaults.
// An empty path or a missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies MAZESOLVE_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MAZESOLVE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MAZESOLVE_FORMAT"); v != "" {
		c.Output.Format = v
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("%w: logging level %q (valid: %v)", ErrInvalidConfig, c.Logging.Level, ValidLevels)
	}
	if c.Output.Format != FormatText && c.Output.Format != FormatYAML {
		return fmt.Errorf("%w: output format %q (valid: text, yaml)", ErrInvalidConfig, c.Output.Format)
	}

	return nil
}
