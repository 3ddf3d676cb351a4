// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level favsync configuration. It is populated by
// merging command-line flags, environment variables and an optional config
// file, then filled with defaults and validated.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Sync    Sync    `envPrefix:"SYNC_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file,
	// chosen by extension.
	// Env: CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the rotated log file path. Empty puts favsync.log next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the local library storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// LockFile guards the library against concurrent sync processes.
	// Empty derives "<DSN>.lock".
	// Env: STORAGE_DB_LOCK_FILE
	LockFile string `env:"LOCK_FILE"`
}

// Adapter holds the remote site connection settings.
type Adapter struct {
	// BaseURL is the site root favorites and gallery pages are served from.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIURL is the JSON metadata endpoint.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// MemberID, PassHash and Igneous are the session cookies of the logged
	// in account. Igneous is only needed for the restricted site.
	// Env: ADAPTER_MEMBER_ID, ADAPTER_PASS_HASH, ADAPTER_IGNEOUS
	MemberID string `env:"MEMBER_ID"`
	PassHash string `env:"PASS_HASH"`
	Igneous  string `env:"IGNEOUS"`
}

// Sync holds the favorites sync engine settings.
type Sync struct {
	// ReadOnly disables pushing local changes to the remote site.
	// Env: SYNC_READ_ONLY
	ReadOnly bool `env:"READ_ONLY"`

	// Strict turns per-item failures into run failures.
	// Env: SYNC_STRICT
	Strict bool `env:"STRICT"`

	// RetryAttempts is the total number of tries for one remote mutation.
	// Env: SYNC_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryDelay is the pause between two tries of a remote mutation.
	// Env: SYNC_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// ThrottleStep, ThrottleMax and ThrottleWarn shape the request pacing.
	// Env: SYNC_THROTTLE_STEP, SYNC_THROTTLE_MAX, SYNC_THROTTLE_WARN
	ThrottleStep time.Duration `env:"THROTTLE_STEP"`
	ThrottleMax  time.Duration `env:"THROTTLE_MAX"`
	ThrottleWarn time.Duration `env:"THROTTLE_WARN"`

	// Interval is the period of the watch command.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Load assembles the configuration from every source. Flags must already be
// parsed into fs; it may be nil when no command line is involved.
//
// Precedence, highest first: flags, environment (including a .env file in the
// working directory), config file, defaults.
func Load(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withFlags(fs).
		withEnv().
		withFile().
		build()
}
