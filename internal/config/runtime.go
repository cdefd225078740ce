package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultRuntimeDir = ".weatherbot"

// IsDebug reports whether WEATHERBOT_DEBUG is set to a true value.
func IsDebug() bool {
	on, _ := strconv.ParseBool(os.Getenv("WEATHERBOT_DEBUG"))
	return on
}

// GetRuntimePath returns the directory for .env, the database and the
// input history. Relative paths and "~/" are resolved against the home
// directory.
func GetRuntimePath() string {
	path := os.Getenv("WEATHERBOT_RUNTIME_PATH")
	if path == "" {
		path = defaultRuntimeDir
	}
	path = strings.TrimPrefix(path, "~/")

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
