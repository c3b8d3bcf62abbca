// Package paths resolves the configuration directory and the database
// file location for the roots CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDBName is the database filename used when no override is
// active, relative to the current working directory.
const DefaultDBName = "word_by_word_en.db"

// Environment variable names for overrides.
const (
	EnvConfigDir = "ROOTS_CONFIG_DIR"
	EnvDBPath    = "ROOTS_DB_PATH"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/roots (fallback ~/.config/roots)
// macOS:   ~/Library/Application Support/roots
// Windows: %APPDATA%/roots
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "roots"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "roots"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "roots"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ROOTS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDBPath returns the database file path following the precedence
// chain: flag > config.yaml db_path > ROOTS_DB_PATH env > default
// $(CWD)/word_by_word_en.db.
//
// The CWD-relative default keeps the tool usable from inside an app
// checkout without any configuration.
func ResolveDBPath(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDBPath); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDBName), nil
}
