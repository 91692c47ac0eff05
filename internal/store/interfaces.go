// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore keeps the provisioning data and the onboarding state of
// the device.
type CredentialStore interface {
	// ReadCredentials returns the provisioned network credentials or
	// [ErrNotProvisioned].
	ReadCredentials(ctx context.Context) (models.Credentials, error)
	// ReadSecretKey returns the key used to sign binding requests or
	// [ErrNotProvisioned].
	ReadSecretKey(ctx context.Context) (string, error)
	// ReadTimezone returns the IANA timezone name or [ErrSettingNotFound].
	ReadTimezone(ctx context.Context) (string, error)
	// ReadOnboardingState returns the binding state. A device that was never
	// bound yields the zero state and no error.
	ReadOnboardingState(ctx context.Context) (models.OnboardingState, error)
	WriteOnboardingState(ctx context.Context, state models.OnboardingState) error
	WriteProvisioning(ctx context.Context, p models.Provisioning) error
}

// TrackingRepository is the local queue of usage events awaiting upload.
type TrackingRepository interface {
	RecordTracking(ctx context.Context, record models.TrackingRecord) (int64, error)
	PendingTracking(ctx context.Context, limit int) ([]models.TrackingRecord, error)
	MarkTrackingUploaded(ctx context.Context, ids []int64) error
}

// HistoryRepository stores finished sync sessions.
type HistoryRepository interface {
	SaveSession(ctx context.Context, record models.SessionRecord) error
	LastSessions(ctx context.Context, limit int) ([]models.SessionRecord, error)
}
