// Package config holds the client-side configuration of the LuxeBid
// CLI: where the backend lives and where durable local state is kept.
package config

import (
	"os"
	"path/filepath"
)

// Config holds configuration for the LuxeBid client.
type Config struct {
	APIBaseURL string // LuxeBid REST API root (default http://localhost:8000/api)
	DBPath     string // SQLite database path (default ~/.luxebid/luxebid.db, ":memory:" for testing)
	LogLevel   string // Log level: debug, info, warn, error
	LogFormat  string // Log format: text, json
}

// Default returns sensible defaults, honoring the LUXEBID_API
// environment variable for the backend URL.
func Default() Config {
	return Config{
		APIBaseURL: defaultAPIBaseURL(),
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

func defaultAPIBaseURL() string {
	if s := os.Getenv("LUXEBID_API"); s != "" {
		return s
	}
	return "http://localhost:8000/api"
}

// DefaultDBPath returns the standard location for durable client
// state (~/.luxebid/luxebid.db), creating the directory if needed.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".luxebid")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "luxebid.db"), nil
}
