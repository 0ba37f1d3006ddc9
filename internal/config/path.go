// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultDatabasePath is where the expense database lives unless
// overridden by configuration.
func DefaultDatabasePath() string {
	return ExpandPath("~/.local/share/centavo/centavo.db")
}

// DefaultChartsDir is where generated chart images land unless
// overridden by configuration.
func DefaultChartsDir() string {
	return ExpandPath("~/.local/share/centavo/charts")
}
