// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// daemon invariants before it is used at startup. It runs after defaults
// were applied, so only values that have no sensible default are required.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.DeviceID == "" {
		return fmt.Errorf("%w: device id is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.MinBatteryPercent < 0 || cfg.App.MinBatteryPercent > 100 {
		return fmt.Errorf("%w: min battery percent out of range", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.RootDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	r := cfg.Retry
	for _, n := range []int{r.BindAttempts, r.TelemetryAttempts, r.ManifestAttempts, r.FileAttempts, r.FirmwareAttempts, r.ConnectAttempts} {
		if n < 1 {
			return ErrInvalidRetryConfigs
		}
	}
	if r.Delay < 0 {
		return ErrInvalidRetryConfigs
	}

	return nil
}
