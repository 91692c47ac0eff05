// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaults is merged last and only fills fields left at their zero value.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MinBatteryPercent: 30,
		},
		Storage: Storage{
			DB:    DB{DSN: "device.db"},
			Files: Files{RootDir: "data"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8081",
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout:  30 * time.Second,
			DownloadTimeout: 5 * time.Minute,
		},
		Workers: Workers{
			SyncInterval: 6 * time.Hour,
		},
		Retry: Retry{
			BindAttempts:      3,
			TelemetryAttempts: 2,
			ManifestAttempts:  3,
			FileAttempts:      3,
			FirmwareAttempts:  4,
			ConnectAttempts:   3,
			Delay:             2 * time.Second,
		},
		Device: Device{
			TimeSyncTimeout:    30 * time.Second,
			PeerReleaseTimeout: 5 * time.Second,
			PowerSupplyDir:     "/sys/class/power_supply",
		},
	}
}
