package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/forkrul/toast/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, nonEmpty),
		criterio.Run("defaults.duration_ms", c.Defaults.DurationMs, nonNegative),
		criterio.Run("defaults.error_duration_ms", c.Defaults.ErrorDurationMs, nonNegative),
		criterio.Run("toasts.max_visible", c.Toasts.MaxVisible, atLeastOne),
		criterio.Run("toasts.tick_interval_ms", c.Toasts.TickIntervalMs, atLeastOne),
		criterio.Run("history.max_entries", c.History.MaxEntries, nonNegative),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		c.validateQuietPatterns(),
	)
}

// ValidateDeep performs comprehensive validation including file
// accessibility. The configPath argument specifies the config file
// location to validate (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if !c.History.IsEnabled() && len(c.Quiet) > 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Quiet",
			Message:  "quiet rules suppress toasts but history is disabled, so muted notifications are lost entirely",
		})
	}

	if c.Toasts.TickIntervalMs < 50 {
		warnings = append(warnings, ValidationWarning{
			Category: "Toasts",
			Item:     "tick_interval_ms",
			Message:  fmt.Sprintf("%dms redraw interval may cause excessive CPU usage", c.Toasts.TickIntervalMs),
		})
	}

	return warnings
}

func (c *Config) validateQuietPatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Quiet {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("quiet[%d]", i), fmt.Errorf("invalid glob pattern %q", pattern))
		}
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func nonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func atLeastOne(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %v", name, styles.ThemeNames())
	}
	return nil
}

func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // created on first use
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
