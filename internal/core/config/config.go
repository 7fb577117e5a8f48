// Package config handles configuration loading and validation for toast.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Toasts   ToastsConfig   `yaml:"toasts"`
	Quiet    []string       `yaml:"quiet"`
	History  HistoryConfig  `yaml:"history"`
	TUI      TUIConfig      `yaml:"tui"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// DefaultsConfig sets the auto-expiry duration policy handed to the
// notification store. Values are milliseconds; zero falls back to the
// built-in policy.
type DefaultsConfig struct {
	DurationMs      int `yaml:"duration_ms"`
	ErrorDurationMs int `yaml:"error_duration_ms"`
}

// ToastsConfig controls the toast surface.
type ToastsConfig struct {
	// MaxVisible caps how many toasts the surface displays at once.
	// The store itself never evicts; this is display policy only.
	MaxVisible     int `yaml:"max_visible"`
	TickIntervalMs int `yaml:"tick_interval_ms"`
}

// HistoryConfig controls the persisted notification archive.
type HistoryConfig struct {
	Enabled    *bool `yaml:"enabled"` // nil = enabled
	MaxEntries int   `yaml:"max_entries"`
}

// TUIConfig holds TUI appearance settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// IsEnabled reports whether the archive should be used.
func (h HistoryConfig) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// GeneralDuration returns the configured general auto-expiry duration.
func (d DefaultsConfig) GeneralDuration() time.Duration {
	return time.Duration(d.DurationMs) * time.Millisecond
}

// ErrorDuration returns the configured error auto-expiry duration.
func (d DefaultsConfig) ErrorDuration() time.Duration {
	return time.Duration(d.ErrorDurationMs) * time.Millisecond
}

// TickInterval returns the surface redraw interval.
func (t ToastsConfig) TickInterval() time.Duration {
	return time.Duration(t.TickIntervalMs) * time.Millisecond
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			DurationMs:      5000,
			ErrorDurationMs: 8000,
		},
		Toasts: ToastsConfig{
			MaxVisible:     5,
			TickIntervalMs: 100,
		},
		History: HistoryConfig{
			MaxEntries: 1000,
		},
		TUI: TUIConfig{
			Theme: "tokyo-night",
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		case os.IsNotExist(err):
			// No config file, defaults apply.
		default:
			return nil, fmt.Errorf("stat config file: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Defaults.DurationMs == 0 {
		c.Defaults.DurationMs = defaults.Defaults.DurationMs
	}
	if c.Defaults.ErrorDurationMs == 0 {
		c.Defaults.ErrorDurationMs = defaults.Defaults.ErrorDurationMs
	}
	if c.Toasts.MaxVisible == 0 {
		c.Toasts.MaxVisible = defaults.Toasts.MaxVisible
	}
	if c.Toasts.TickIntervalMs == 0 {
		c.Toasts.TickIntervalMs = defaults.Toasts.TickIntervalMs
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = defaults.History.MaxEntries
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}
