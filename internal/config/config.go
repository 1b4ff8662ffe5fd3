// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package config

import (
	"time"
)

// Config is the top-level configuration container for docsync. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Remote holds the remote document store endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Queue holds retry and backoff settings for the operation queue.
	Queue Queue `envPrefix:"QUEUE_"`

	// Realtime holds the realtime push channel endpoint settings.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// Connectivity holds the connectivity prober settings.
	Connectivity Connectivity `envPrefix:"CONNECTIVITY_"`

	// Storage holds the durable queue persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Status holds the daemon's observability endpoint settings.
	Status Status `envPrefix:"STATUS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds the endpoint settings for the remote document store.
type Remote struct {
	// Address is the base URL of the remote store, e.g. "https://api.example.com".
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is the optional bearer token attached to every request.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Queue holds retry, backoff, and persistence-key settings for the
// operation queue.
type Queue struct {
	// MaxRetries is the transient-failure retry budget per operation.
	// Env: QUEUE_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// BackoffBase is the first retry delay; each further transient failure
	// doubles it. Env: QUEUE_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffCap bounds the doubled retry delay. Env: QUEUE_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`

	// StorageKey is the persistence key the serialized queue is stored
	// under. Env: QUEUE_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY"`

	// DrainInterval is the period of the background drain job (safety net
	// for missed connectivity notifications). Env: QUEUE_DRAIN_INTERVAL
	DrainInterval time.Duration `env:"DRAIN_INTERVAL"`
}

// Realtime holds the push channel transport settings.
type Realtime struct {
	// Address is the websocket endpoint base URL, e.g. "wss://api.example.com".
	// Env: REALTIME_ADDRESS
	Address string `env:"ADDRESS"`
}

// Connectivity holds the settings of the HTTP connectivity prober.
type Connectivity struct {
	// ProbeURL is the health endpoint polled to detect connectivity.
	// Defaults to the remote store address. Env: CONNECTIVITY_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`

	// Interval is the polling period. Env: CONNECTIVITY_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// ProbeTimeout bounds a single probe request.
	// Env: CONNECTIVITY_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Storage holds the durable queue persistence backend settings.
type Storage struct {
	// Driver selects the persistence backend: "file", "sqlite" or "postgres".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the backend-specific location: a file path for "file" and
	// "sqlite", a connection string for "postgres".
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Status holds the daemon's read-only HTTP status endpoint settings.
type Status struct {
	// Address is the listen address in "host:port" form; empty disables the
	// endpoint. Env: STATUS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Defaults applied by GetConfig for fields left unset by every source.
const (
	DefaultMaxRetries     = 3
	DefaultBackoffBase    = 500 * time.Millisecond
	DefaultBackoffCap     = 30 * time.Second
	DefaultStorageKey     = "docsync/queue/v1"
	DefaultRequestTimeout = 15 * time.Second
	DefaultProbeInterval  = 10 * time.Second
	DefaultProbeTimeout   = 5 * time.Second
	DefaultDrainInterval  = time.Minute
	DefaultStorageDriver  = "file"
)

// GetConfig loads, merges, and validates the configuration from all sources
// in the following priority order (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields fall back to the package defaults. Returns a fully populated
// *Config or an error if any source fails to load or validation fails.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *Config) applyDefaults() {
	if cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Queue.MaxRetries == 0 {
		cfg.Queue.MaxRetries = DefaultMaxRetries
	}
	if cfg.Queue.BackoffBase == 0 {
		cfg.Queue.BackoffBase = DefaultBackoffBase
	}
	if cfg.Queue.BackoffCap == 0 {
		cfg.Queue.BackoffCap = DefaultBackoffCap
	}
	if cfg.Queue.StorageKey == "" {
		cfg.Queue.StorageKey = DefaultStorageKey
	}
	if cfg.Queue.DrainInterval == 0 {
		cfg.Queue.DrainInterval = DefaultDrainInterval
	}
	if cfg.Connectivity.ProbeURL == "" {
		cfg.Connectivity.ProbeURL = cfg.Remote.Address
	}
	if cfg.Connectivity.Interval == 0 {
		cfg.Connectivity.Interval = DefaultProbeInterval
	}
	if cfg.Connectivity.ProbeTimeout == 0 {
		cfg.Connectivity.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DefaultStorageDriver
	}
}
