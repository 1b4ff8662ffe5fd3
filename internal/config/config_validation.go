// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package config

// validate checks that the final merged [Config] satisfies the invariants
// required at startup. It runs after defaults are applied, so only settings
// without a sensible default are checked here.
func (cfg *Config) validate() error {
	if cfg.Remote.Address == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Queue.MaxRetries < 1 || cfg.Queue.BackoffBase <= 0 || cfg.Queue.BackoffCap < cfg.Queue.BackoffBase {
		return ErrInvalidQueueConfigs
	}

	switch cfg.Storage.Driver {
	case "file", "sqlite", "postgres":
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
