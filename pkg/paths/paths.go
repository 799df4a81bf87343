package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for xfiles
	EnvConfigDir = "XFILES_CONFIG_DIR"

	// EnvStateHome is the XDG state base directory
	EnvStateHome = "XDG_STATE_HOME"
)

const (
	// AppDirName is the directory name for xfiles-specific files
	AppDirName = "xfiles"

	// LogFileName is the name of the log file
	LogFileName = "xfiles.log"
)

// ConfigDir returns the xfiles config directory, honoring XFILES_CONFIG_DIR
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// LogFilePath returns the path to the xfiles log file.
// It respects XDG_STATE_HOME if set, otherwise uses ~/.local/state/xfiles/
func LogFilePath() string {
	stateHome := os.Getenv(EnvStateHome)
	if stateHome == "" {
		home, err := GetHomeDirectory()
		if err != nil {
			// Fallback to current directory if we can't get home
			return LogFileName
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, AppDirName, LogFileName)
}

// ExpandHome expands a leading ~ or ~/ to the current user's home directory.
// It is meant for configuration values; selection items go through Normalizer.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		// Can't expand, return as-is
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
