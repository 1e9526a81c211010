// Package store keeps a library of named positions in a BadgerDB database.
package store

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessbits"

// homeEnv overrides the data directory on every platform.
const homeEnv = "CHESSBITS_HOME"

// DataDir returns the platform-specific data directory for the application,
// creating it if needed.
// - $CHESSBITS_HOME when set
// - macOS: ~/Library/Application Support/chessbits/
// - Linux: $XDG_DATA_HOME/chessbits/ or ~/.local/share/chessbits/
// - Windows: %APPDATA%/chessbits/
func DataDir() (string, error) {
	if dir := os.Getenv(homeEnv); dir != "" {
		return ensureDir(dir)
	}

	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return ensureDir(filepath.Join(baseDir, appName))
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DatabaseDir returns the directory for the BadgerDB database.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return ensureDir(filepath.Join(dataDir, "db"))
}
