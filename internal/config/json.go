// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
// Durations are accepted as Go duration strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		DeviceID           string `json:"device_id"`
		FirmwareVersion    string `json:"firmware_version"`
		FirmwareTargetPath string `json:"firmware_target_path"`
		MinBatteryPercent  int    `json:"min_battery_percent"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			RootDir string `json:"root_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		DownloadTimeout Duration `json:"download_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Retry struct {
		BindAttempts      int      `json:"bind_attempts"`
		TelemetryAttempts int      `json:"telemetry_attempts"`
		ManifestAttempts  int      `json:"manifest_attempts"`
		FileAttempts      int      `json:"file_attempts"`
		FirmwareAttempts  int      `json:"firmware_attempts"`
		ConnectAttempts   int      `json:"connect_attempts"`
		Delay             Duration `json:"delay"`
	} `json:"retry,omitempty"`

	Device struct {
		ProbeAddress       string   `json:"probe_address"`
		TimeSyncTimeout    Duration `json:"time_sync_timeout"`
		PeerReleaseTimeout Duration `json:"peer_release_timeout"`
		PowerSupplyDir     string   `json:"power_supply_dir"`
		LogFile            string   `json:"log_file"`
	} `json:"device,omitempty"`

	Metrics struct {
		Enabled bool `json:"enabled"`
	} `json:"metrics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DeviceID:           jsonCfg.App.DeviceID,
			FirmwareVersion:    jsonCfg.App.FirmwareVersion,
			FirmwareTargetPath: jsonCfg.App.FirmwareTargetPath,
			MinBatteryPercent:  jsonCfg.App.MinBatteryPercent,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				RootDir: jsonCfg.Storage.Files.RootDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			DownloadTimeout: time.Duration(jsonCfg.Adapter.DownloadTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		Retry: Retry{
			BindAttempts:      jsonCfg.Retry.BindAttempts,
			TelemetryAttempts: jsonCfg.Retry.TelemetryAttempts,
			ManifestAttempts:  jsonCfg.Retry.ManifestAttempts,
			FileAttempts:      jsonCfg.Retry.FileAttempts,
			FirmwareAttempts:  jsonCfg.Retry.FirmwareAttempts,
			ConnectAttempts:   jsonCfg.Retry.ConnectAttempts,
			Delay:             time.Duration(jsonCfg.Retry.Delay),
		},
		Device: Device{
			ProbeAddress:       jsonCfg.Device.ProbeAddress,
			TimeSyncTimeout:    time.Duration(jsonCfg.Device.TimeSyncTimeout),
			PeerReleaseTimeout: time.Duration(jsonCfg.Device.PeerReleaseTimeout),
			PowerSupplyDir:     jsonCfg.Device.PowerSupplyDir,
			LogFile:            jsonCfg.Device.LogFile,
		},
		Metrics: Metrics{
			Enabled: jsonCfg.Metrics.Enabled,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
