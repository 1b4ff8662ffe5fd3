package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	Remote struct {
		Address        string   `json:"address"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Queue struct {
		MaxRetries    int      `json:"max_retries"`
		BackoffBase   Duration `json:"backoff_base"`
		BackoffCap    Duration `json:"backoff_cap"`
		StorageKey    string   `json:"storage_key"`
		DrainInterval Duration `json:"drain_interval"`
	} `json:"queue,omitempty"`

	Realtime struct {
		Address string `json:"address"`
	} `json:"realtime,omitempty"`

	Connectivity struct {
		ProbeURL     string   `json:"probe_url"`
		Interval     Duration `json:"interval"`
		ProbeTimeout Duration `json:"probe_timeout"`
	} `json:"connectivity,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DSN    string `json:"dsn"`
	} `json:"storage,omitempty"`

	Status struct {
		Address string `json:"address"`
	} `json:"status,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Remote: Remote{
			Address:        jsonCfg.Remote.Address,
			Token:          jsonCfg.Remote.Token,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Queue: Queue{
			MaxRetries:    jsonCfg.Queue.MaxRetries,
			BackoffBase:   time.Duration(jsonCfg.Queue.BackoffBase),
			BackoffCap:    time.Duration(jsonCfg.Queue.BackoffCap),
			StorageKey:    jsonCfg.Queue.StorageKey,
			DrainInterval: time.Duration(jsonCfg.Queue.DrainInterval),
		},
		Realtime: Realtime{
			Address: jsonCfg.Realtime.Address,
		},
		Connectivity: Connectivity{
			ProbeURL:     jsonCfg.Connectivity.ProbeURL,
			Interval:     time.Duration(jsonCfg.Connectivity.Interval),
			ProbeTimeout: time.Duration(jsonCfg.Connectivity.ProbeTimeout),
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DSN:    jsonCfg.Storage.DSN,
		},
		Status: Status{
			Address: jsonCfg.Status.Address,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
