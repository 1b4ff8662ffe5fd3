package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergePriority(t *testing.T) {
	// env wins over a later source for the same field
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{
			Remote:  Remote{Address: "https://from-env.example.com"},
			Storage: Storage{Driver: "file", DSN: "/tmp/q.json"},
		},
		&Config{
			Remote: Remote{Address: "https://from-flags.example.com", Token: "flag-token"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://from-env.example.com", cfg.Remote.Address)
	assert.Equal(t, "flag-token", cfg.Remote.Token)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{
		Remote:  Remote{Address: "https://api.example.com"},
		Storage: Storage{DSN: "/tmp/q.json"},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxRetries, cfg.Queue.MaxRetries)
	assert.Equal(t, DefaultBackoffBase, cfg.Queue.BackoffBase)
	assert.Equal(t, DefaultBackoffCap, cfg.Queue.BackoffCap)
	assert.Equal(t, DefaultStorageKey, cfg.Queue.StorageKey)
	assert.Equal(t, DefaultRequestTimeout, cfg.Remote.RequestTimeout)
	assert.Equal(t, DefaultStorageDriver, cfg.Storage.Driver)
	assert.Equal(t, DefaultDrainInterval, cfg.Queue.DrainInterval)
	assert.Equal(t, cfg.Remote.Address, cfg.Connectivity.ProbeURL, "probe URL falls back to the remote address")
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name:    "missing remote address",
			cfg:     &Config{Storage: Storage{DSN: "/tmp/q.json"}},
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name: "missing storage dsn",
			cfg: &Config{
				Remote: Remote{Address: "https://api.example.com"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown storage driver",
			cfg: &Config{
				Remote:  Remote{Address: "https://api.example.com"},
				Storage: Storage{Driver: "etcd", DSN: "whatever"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "backoff cap below base",
			cfg: &Config{
				Remote:  Remote{Address: "https://api.example.com"},
				Queue:   Queue{BackoffBase: time.Second, BackoffCap: 100 * time.Millisecond},
				Storage: Storage{DSN: "/tmp/q.json"},
			},
			wantErr: ErrInvalidQueueConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
