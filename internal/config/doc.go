// Package config loads the bazarly client configuration from environment
// variables, command-line flags, and an optional JSON file, merging the three
// sources with mergo (first non-zero field wins) and validating the result.
//
// The configuration is resolved exactly once at process start via
// [GetClientConfig] and is immutable afterwards; there is no hot-reload.
package config
