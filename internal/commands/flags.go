package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hay-kot/wiprank/internal/core/config"
	"github.com/hay-kot/wiprank/internal/core/priority"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Now is the reference date (YYYY-MM-DD) used for recurrence math.
	// Empty means the current time.
	Now string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// Clock returns the reference date for scoring as UTC midnight, the same
// form LAST_COMPLETED parses to, so recurrence counts calendar days. Without
// --now it is today's local calendar date.
func (f *Flags) Clock() (time.Time, error) {
	if f.Now == "" {
		return today(time.Now()), nil
	}

	t, err := time.Parse(priority.DateLayout, f.Now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: expected YYYY-MM-DD", f.Now)
	}
	return t, nil
}

// today returns the calendar date of now, in now's location, at UTC midnight.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wiprank", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/wiprank/wiprank.log
// On Linux: $XDG_STATE_HOME/wiprank/wiprank.log (defaults to ~/.local/state/wiprank/wiprank.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "wiprank", "wiprank.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "wiprank", "wiprank.log")
	}

	return filepath.Join(home, ".local", "state", "wiprank", "wiprank.log")
}
