package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a remote store base URL
//	-token remote store bearer token
//	-realtime-address realtime websocket base URL
//	-probe-url connectivity probe URL
//	-d persistence DSN (file path or connection string)
//	-driver persistence driver: file, sqlite, postgres
//	-status-address status endpoint listen address
//	-c/-config json file path with configs
//	-max-retries transient retry budget per operation
//	-backoff-base first retry delay (e.g., "500ms")
//	-backoff-cap retry delay cap (e.g., "30s")
//	-drain-interval background drain period (e.g., "1m")
//	-request-timeout outbound request timeout (e.g., "15s")
func ParseFlags() *Config {
	return parseFlagSet(flag.CommandLine, os.Args[1:])
}

func parseFlagSet(fs *flag.FlagSet, args []string) *Config {
	var remoteAddress string
	var remoteToken string
	var realtimeAddress string
	var probeURL string
	var dsn string
	var driver string
	var statusAddress string
	var jsonConfigPath string
	var maxRetries int
	var backoffBase time.Duration
	var backoffCap time.Duration
	var drainInterval time.Duration
	var requestTimeout time.Duration

	fs.StringVar(&remoteAddress, "a", "", "Remote store base URL")
	fs.StringVar(&remoteToken, "token", "", "Remote store bearer token")
	fs.StringVar(&realtimeAddress, "realtime-address", "", "Realtime websocket base URL")
	fs.StringVar(&probeURL, "probe-url", "", "Connectivity probe URL")
	fs.StringVar(&dsn, "d", "", "Persistence DSN")
	fs.StringVar(&driver, "driver", "", "Persistence driver: file, sqlite, postgres")
	fs.StringVar(&statusAddress, "status-address", "", "Status endpoint listen address")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&maxRetries, "max-retries", 0, "Transient retry budget per operation")
	fs.DurationVar(&backoffBase, "backoff-base", 0, "First retry delay (e.g., 500ms)")
	fs.DurationVar(&backoffCap, "backoff-cap", 0, "Retry delay cap (e.g., 30s)")
	fs.DurationVar(&drainInterval, "drain-interval", 0, "Background drain period (e.g., 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")

	_ = fs.Parse(args)

	return &Config{
		Remote: Remote{
			Address:        remoteAddress,
			Token:          remoteToken,
			RequestTimeout: requestTimeout,
		},
		Queue: Queue{
			MaxRetries:    maxRetries,
			BackoffBase:   backoffBase,
			BackoffCap:    backoffCap,
			DrainInterval: drainInterval,
		},
		Realtime: Realtime{
			Address: realtimeAddress,
		},
		Connectivity: Connectivity{
			ProbeURL: probeURL,
		},
		Storage: Storage{
			Driver: driver,
			DSN:    dsn,
		},
		Status: Status{
			Address: statusAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
