// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"REMOTE_ADDRESS":         "https://api.example.com",
		"REMOTE_TOKEN":           "secret-token",
		"REMOTE_REQUEST_TIMEOUT": "30s",

		"QUEUE_MAX_RETRIES":    "5",
		"QUEUE_BACKOFF_BASE":   "250ms",
		"QUEUE_BACKOFF_CAP":    "10s",
		"QUEUE_STORAGE_KEY":    "custom/queue",
		"QUEUE_DRAIN_INTERVAL": "2m",

		"REALTIME_ADDRESS": "wss://api.example.com",

		"CONNECTIVITY_PROBE_URL":     "https://api.example.com/health",
		"CONNECTIVITY_INTERVAL":      "5s",
		"CONNECTIVITY_PROBE_TIMEOUT": "2s",

		"STORAGE_DRIVER": "sqlite",
		"STORAGE_DSN":    "/var/lib/docsync/queue.db",

		"STATUS_ADDRESS": "localhost:7070",
	}
	setEnvVars(t, envVars)

	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://api.example.com", cfg.Remote.Address)
	assert.Equal(t, "secret-token", cfg.Remote.Token)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)

	assert.Equal(t, 5, cfg.Queue.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.BackoffBase)
	assert.Equal(t, 10*time.Second, cfg.Queue.BackoffCap)
	assert.Equal(t, "custom/queue", cfg.Queue.StorageKey)
	assert.Equal(t, 2*time.Minute, cfg.Queue.DrainInterval)

	assert.Equal(t, "wss://api.example.com", cfg.Realtime.Address)

	assert.Equal(t, "https://api.example.com/health", cfg.Connectivity.ProbeURL)
	assert.Equal(t, 5*time.Second, cfg.Connectivity.Interval)
	assert.Equal(t, 2*time.Second, cfg.Connectivity.ProbeTimeout)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/docsync/queue.db", cfg.Storage.DSN)

	assert.Equal(t, "localhost:7070", cfg.Status.Address)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.Remote.Address)
	assert.Zero(t, cfg.Queue.MaxRetries)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"REMOTE_REQUEST_TIMEOUT": "not-a-duration"})

	cfg := &Config{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
