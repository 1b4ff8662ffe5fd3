package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func parseTestFlags(t *testing.T, args ...string) *Config {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	return parseFlagSet(fs, args)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseTestFlags(t,
		"-a", "https://api.example.com",
		"-token", "secret",
		"-realtime-address", "wss://api.example.com",
		"-probe-url", "https://api.example.com/health",
		"-d", "/tmp/queue.json",
		"-driver", "file",
		"-status-address", ":7070",
		"-c", "/etc/docsync/config.json",
		"-max-retries", "4",
		"-backoff-base", "100ms",
		"-backoff-cap", "5s",
		"-drain-interval", "30s",
		"-request-timeout", "20s",
	)

	assert.Equal(t, "https://api.example.com", cfg.Remote.Address)
	assert.Equal(t, "secret", cfg.Remote.Token)
	assert.Equal(t, 20*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "wss://api.example.com", cfg.Realtime.Address)
	assert.Equal(t, "https://api.example.com/health", cfg.Connectivity.ProbeURL)
	assert.Equal(t, "/tmp/queue.json", cfg.Storage.DSN)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, ":7070", cfg.Status.Address)
	assert.Equal(t, "/etc/docsync/config.json", cfg.JSONFilePath)
	assert.Equal(t, 4, cfg.Queue.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.Queue.BackoffBase)
	assert.Equal(t, 5*time.Second, cfg.Queue.BackoffCap)
	assert.Equal(t, 30*time.Second, cfg.Queue.DrainInterval)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseTestFlags(t, "-config", "/etc/docsync/config.json")
	assert.Equal(t, "/etc/docsync/config.json", cfg.JSONFilePath)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg := parseTestFlags(t)

	assert.Empty(t, cfg.Remote.Address)
	assert.Zero(t, cfg.Queue.MaxRetries)
	assert.Empty(t, cfg.Storage.DSN)
}
