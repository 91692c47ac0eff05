// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BindRequest binds a device to the account that provisioned it.
type BindRequest struct {
	DeviceID  string `json:"device_id"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
	Firmware  string `json:"firmware"`
}

// BindResponse is returned by a successful binding. DeviceToken is taken
// from the Authorization response header.
type BindResponse struct {
	AccountID   string `json:"account_id"`
	DeviceToken string `json:"-"`
}

// DeviceInfo is the telemetry snapshot uploaded on every full sync.
type DeviceInfo struct {
	DeviceID        string    `json:"device_id"`
	FirmwareVersion string    `json:"firmware_version"`
	ResourceVersion string    `json:"resource_version,omitempty"`
	BatteryPercent  int       `json:"battery_percent"`
	ExternalPower   bool      `json:"external_power"`
	Mode            string    `json:"mode"`
	ReportedAt      time.Time `json:"reported_at"`
}

// TrackingRecord is one locally recorded usage event (for example a tag
// scan that started playback) waiting to be uploaded.
type TrackingRecord struct {
	ID         int64     `json:"id"`
	Kind       string    `json:"kind"`
	Payload    string    `json:"payload"`
	RecordedAt time.Time `json:"recorded_at"`
}

// TrackingUpload is the request body of the tracking upload endpoint.
type TrackingUpload struct {
	DeviceID string           `json:"device_id"`
	Records  []TrackingRecord `json:"records"`
	Length   int              `json:"length"`
}

// FirmwareInfo is the remote-advertised firmware image.
type FirmwareInfo struct {
	Version string `json:"version"`
	URL     string `json:"url"`
	Size    int64  `json:"size"`
	// SHA256 is the hex checksum of the image; empty skips verification.
	SHA256 string `json:"sha256,omitempty"`
}

// ResourceManifestInfo carries a freshly fetched resource manifest in both
// raw and decoded form. Raw is persisted byte-for-byte.
type ResourceManifestInfo struct {
	Raw      []byte
	Document ResourceManifestDocument
}

// AccountManifestInfo carries a freshly fetched account manifest.
type AccountManifestInfo struct {
	Raw      []byte
	Document AccountManifestDocument
}

// Credentials are the network credentials provisioned onto the device.
type Credentials struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
}

// OnboardingState records whether first-time account binding has completed.
type OnboardingState struct {
	Bound       bool       `json:"bound"`
	DeviceToken string     `json:"-"`
	AccountID   string     `json:"account_id,omitempty"`
	BoundAt     *time.Time `json:"bound_at,omitempty"`
}

// Provisioning is the payload accepted by the local provisioning endpoint.
type Provisioning struct {
	SSID      string `json:"ssid"`
	Password  string `json:"password"`
	SecretKey string `json:"secret_key"`
	Timezone  string `json:"timezone"`
}
