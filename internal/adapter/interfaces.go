// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the device cloud API.
//
// The primary abstraction is [CloudAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPCloudAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// CloudAdapter defines communication with the device cloud. Implementations
// are responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type CloudAdapter interface {
	// SetToken stores the device token attached to all subsequent
	// authenticated requests. It is called after a successful Bind and on
	// startup with the token persisted during onboarding.
	SetToken(token string)

	// Token returns the device token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Bind binds the device to the account that provisioned it. On success
	// the device token is taken from the Authorization response header and
	// stored via SetToken. A device already bound to another account yields
	// [ErrAlreadyBound].
	Bind(ctx context.Context, req models.BindRequest) (models.BindResponse, error)

	// UploadDeviceInfo reports the telemetry snapshot of the device.
	UploadDeviceInfo(ctx context.Context, info models.DeviceInfo) error

	// UploadTracking uploads a batch of locally recorded tracking events.
	UploadTracking(ctx context.Context, upload models.TrackingUpload) error

	// FetchResourceManifest downloads the resource manifest advertised for
	// the running firmware version.
	FetchResourceManifest(ctx context.Context, firmwareVersion string) (models.ResourceManifestInfo, error)

	// FetchAccountManifest downloads the manifest of the bound account.
	FetchAccountManifest(ctx context.Context) (models.AccountManifestInfo, error)

	// FetchFirmwareInfo returns the firmware image advertised for the device.
	FetchFirmwareInfo(ctx context.Context) (models.FirmwareInfo, error)
}
