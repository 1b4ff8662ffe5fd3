package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote store settings
	// (for example, a missing base URL).
	ErrInvalidRemoteConfigs = errors.New("invalid remote store configuration")
	// ErrInvalidQueueConfigs indicates invalid queue settings
	// (for example, a zero retry budget or a backoff cap below the base).
	ErrInvalidQueueConfigs = errors.New("invalid queue configuration")
	// ErrInvalidStorageConfigs indicates invalid persistence settings
	// (for example, an unknown driver or empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
