// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-secret-share client. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the secret creation flow itself.
	App App `envPrefix:"APP_"`

	// Storage holds the local ledger database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the secret server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// The format is picked by extension (.yaml and .yml are YAML, anything
	// else is JSON). Populated via the CONFIG environment variable or the
	// -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Origin is the public origin share URLs are composed with
	// (e.g. "https://secrets.example.com"). Defaults to the adapter address.
	// Env: APP_ORIGIN
	Origin string `env:"ORIGIN"`

	// Token is an optional bearer token of a logged-in session. It is sent
	// with every request and unlocks the long lifetimes.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// KeyDerivation is "concat" (default) or "argon2id".
	// Env: APP_KEY_DERIVATION
	KeyDerivation string `env:"KEY_DERIVATION"`

	// MaxArchiveBytes caps the combined size of attached files.
	// Env: APP_MAX_ARCHIVE_BYTES
	MaxArchiveBytes int64 `env:"MAX_ARCHIVE_BYTES"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	// DB holds the ledger database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite ledger.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the secret server connection.
type Adapter struct {
	// HTTPAddress is the base URL of the secret server API
	// (e.g. "https://secrets.example.com" or "localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PruneInterval is how often expired ledger rows are removed.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags from fs (only flags the user set)
//  4. JSON or YAML file (path resolved from sources 2 and 3)
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withFile().
		build()
}
