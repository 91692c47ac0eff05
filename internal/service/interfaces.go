// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the sync engine of the device: the staged
// session orchestrator, the single-session gateway used by external
// triggers, the periodic sync job, and the local device services behind the
// control API.
package service

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncGateway is the boundary used by every trigger (control API, periodic
// job, companion radio) to start and observe sync sessions. At most one
// session runs at a time.
type SyncGateway interface {
	// StartSync starts a session in the background and returns its id, or
	// ErrSyncAlreadyActive while another session runs. The session is
	// detached from ctx cancellation; ctx only contributes its values. cb,
	// when set, is called exactly once after CLEANUP, once the next session
	// may already start.
	StartSync(ctx context.Context, mode models.SyncMode, cb func(models.SessionRecord)) (string, error)
	IsSyncActive() bool
	// RequestCancel flags the active session for cancellation. It is
	// idempotent and reports whether a session was active.
	RequestCancel() bool
	Status() models.SyncStatus
	// Wait blocks until the running session, if any, has finished.
	Wait()
}

// SyncJob triggers full syncs periodically.
type SyncJob interface {
	Start(ctx context.Context) error
	Stop()
}

// DeviceService backs the provisioning, tracking and history endpoints of
// the control API.
type DeviceService interface {
	Provision(ctx context.Context, p models.Provisioning) error
	RecordTracking(ctx context.Context, record models.TrackingRecord) (int64, error)
	History(ctx context.Context, limit int) ([]models.SessionRecord, error)
	OnboardingState(ctx context.Context) (models.OnboardingState, error)
}

// AppInfoService reports the build of the running daemon.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}
