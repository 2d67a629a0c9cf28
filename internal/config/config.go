package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the bazarly
// client runtime. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the remote marketplace endpoint settings.
	API API `envPrefix:"API_"`

	// Storage holds the credential store backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the remote endpoint settings for the HTTP client core.
type API struct {
	// BaseURL is the marketplace API base endpoint
	// (e.g. "https://api.bazarly.app").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the fixed per-request timeout enforced by the HTTP
	// client core (e.g. "30s"). Defaults to 30 seconds.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the settings for the persisted credential store.
type Storage struct {
	// Driver selects the credential store backend: "file" or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the credential store location: a JSON file path for the file
	// driver, or an SQLite DSN for the sqlite driver.
	// Env: STORAGE_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background jobs run by the client.
type Workers struct {
	// ProfileRefreshInterval defines how often the session refresh job
	// re-fetches the authenticated user's profile (e.g. "5m").
	// Env: WORKERS_PROFILE_REFRESH_INTERVAL
	ProfileRefreshInterval time.Duration `env:"PROFILE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (first non-zero field
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
