package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"remote": {
			"address": "https://api.example.com",
			"token": "secret",
			"request_timeout": "25s"
		},
		"queue": {
			"max_retries": 7,
			"backoff_base": "200ms",
			"backoff_cap": "8s",
			"storage_key": "json/queue",
			"drain_interval": "45s"
		},
		"realtime": {"address": "wss://api.example.com"},
		"connectivity": {
			"probe_url": "https://api.example.com/health",
			"interval": "3s",
			"probe_timeout": "1s"
		},
		"storage": {"driver": "postgres", "dsn": "postgres://localhost/docsync"},
		"status": {"address": ":7070"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Remote.Address)
	assert.Equal(t, "secret", cfg.Remote.Token)
	assert.Equal(t, 25*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 7, cfg.Queue.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.Queue.BackoffBase)
	assert.Equal(t, 8*time.Second, cfg.Queue.BackoffCap)
	assert.Equal(t, "json/queue", cfg.Queue.StorageKey)
	assert.Equal(t, 45*time.Second, cfg.Queue.DrainInterval)
	assert.Equal(t, "wss://api.example.com", cfg.Realtime.Address)
	assert.Equal(t, "https://api.example.com/health", cfg.Connectivity.ProbeURL)
	assert.Equal(t, 3*time.Second, cfg.Connectivity.Interval)
	assert.Equal(t, time.Second, cfg.Connectivity.ProbeTimeout)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/docsync", cfg.Storage.DSN)
	assert.Equal(t, ":7070", cfg.Status.Address)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	require.Error(t, d.UnmarshalJSON([]byte(`"bogus"`)))
}
