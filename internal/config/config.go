// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-device-sync daemon. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds device identity and firmware policy settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local database and content root settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the address of the local control API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the cloud API endpoint and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Retry holds the per-call-site retry budgets.
	Retry Retry `envPrefix:"RETRY_"`

	// Device holds settings of the host collaborators (network probe, clock,
	// companion radio, power supply).
	Device Device `envPrefix:"DEVICE_"`

	// Metrics toggles the prometheus registry.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds device identity and firmware policy.
type App struct {
	// DeviceID identifies the device towards the cloud.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// FirmwareVersion overrides the build version as the running firmware
	// version (e.g. "1.4.2"). Empty means "use the build version".
	// Env: APP_FIRMWARE_VERSION
	FirmwareVersion string `env:"FIRMWARE_VERSION"`

	// FirmwareTargetPath is the file replaced when a firmware image is applied.
	// Env: APP_FIRMWARE_TARGET_PATH
	FirmwareTargetPath string `env:"FIRMWARE_TARGET_PATH"`

	// MinBatteryPercent is the minimum battery level required to apply a
	// firmware image without external power.
	// Env: APP_MIN_BATTERY_PERCENT
	MinBatteryPercent int `env:"MIN_BATTERY_PERCENT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the sqlite settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the content root settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path (e.g. "/var/lib/syncd/device.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings of the synchronized content tree.
type Files struct {
	// RootDir contains resource.json, account_file.json, the version marker
	// and the resources/ and account/ trees.
	// Env: STORAGE_FILES_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`
}

// Server holds settings of the local control API.
type Server struct {
	// HTTPAddress is the TCP address of the control API in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single control API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the cloud API client.
type Adapter struct {
	// HTTPAddress is the cloud API base URL (e.g. "https://cloud.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single JSON request to the cloud API.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DownloadTimeout bounds a single artifact transfer attempt.
	// Env: ADAPTER_DOWNLOAD_TIMEOUT
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often a full sync is triggered. Zero disables
	// the periodic trigger.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Retry holds the fixed retry budgets of every remote call site. Budgets
// count attempts, not retries. No backoff is applied, the same Delay
// separates every attempt.
type Retry struct {
	BindAttempts      int           `env:"BIND_ATTEMPTS"`
	TelemetryAttempts int           `env:"TELEMETRY_ATTEMPTS"`
	ManifestAttempts  int           `env:"MANIFEST_ATTEMPTS"`
	FileAttempts      int           `env:"FILE_ATTEMPTS"`
	FirmwareAttempts  int           `env:"FIRMWARE_ATTEMPTS"`
	ConnectAttempts   int           `env:"CONNECT_ATTEMPTS"`
	Delay             time.Duration `env:"DELAY"`
}

// Device holds settings of the host implementations of the collaborators.
type Device struct {
	// ProbeAddress is dialed to confirm connectivity ("host:port"). When
	// empty it is derived from the adapter address.
	// Env: DEVICE_PROBE_ADDRESS
	ProbeAddress string `env:"PROBE_ADDRESS"`

	// TimeSyncTimeout bounds the wait for a valid wall clock.
	// Env: DEVICE_TIME_SYNC_TIMEOUT
	TimeSyncTimeout time.Duration `env:"TIME_SYNC_TIMEOUT"`

	// PeerReleaseTimeout bounds the wait for the companion radio to release
	// shared memory.
	// Env: DEVICE_PEER_RELEASE_TIMEOUT
	PeerReleaseTimeout time.Duration `env:"PEER_RELEASE_TIMEOUT"`

	// PowerSupplyDir is the sysfs power supply directory.
	// Env: DEVICE_POWER_SUPPLY_DIR
	PowerSupplyDir string `env:"POWER_SUPPLY_DIR"`

	// LogFile is the daemon log file path.
	// Env: DEVICE_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Metrics toggles metrics collection.
type Metrics struct {
	// Enabled initialises the prometheus registry and exposes /metrics.
	// Env: METRICS_ENABLED
	Enabled bool `env:"ENABLED"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
