package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/forkrul/toast/internal/core/config"
	"github.com/forkrul/toast/internal/core/notify"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Populated in the Before hook and available to all commands.
	Config   *config.Config
	Store    *notify.Store
	Notifier *notify.Notifier
	Archive  notify.Archive
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toast", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "toast")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/toast/toast.log
// On Linux: $XDG_STATE_HOME/toast/toast.log (defaults to ~/.local/state/toast/toast.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "toast", "toast.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "toast", "toast.log")
	}

	return filepath.Join(home, ".local", "state", "toast", "toast.log")
}
