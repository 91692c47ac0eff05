// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package device holds the contracts of the host subsystems the sync engine
// drives (network, clock, display, companion radio, power, firmware updater)
// together with implementations for a Linux host.
//
// The engine only talks to these interfaces; the implementations here are
// what the syncd daemon wires in.
package device

import (
	"context"
	"time"

	"github.com/MKhiriev/go-device-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/device_mock.go -package=mock

// RetryPolicy is a fixed attempt budget with a constant delay.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// Connectivity brings the network up and tears it down.
type Connectivity interface {
	// Connect joins the network described by creds and confirms the cloud is
	// reachable, retrying per policy. Returns [ErrNotConnected] when the
	// budget is exhausted.
	Connect(ctx context.Context, creds models.Credentials, policy RetryPolicy) error
	// DisconnectAndRelease tears the connection down. Calling it on a
	// disconnected device is a no-op.
	DisconnectAndRelease() error
}

// TimeSync brings the wall clock in line with network time.
type TimeSync interface {
	// StartTimeSync applies timezone (IANA name, empty means UTC) and starts
	// waiting for a valid clock.
	StartTimeSync(timezone string) error
	// WaitForTimeSync blocks until the clock is valid or returns
	// [ErrTimeSyncTimeout].
	WaitForTimeSync(ctx context.Context) error
}

// ProgressNotifier is the display side of a session. Calls never block.
type ProgressNotifier interface {
	SetProgressStage(stage models.Stage)
	SetCompletionScreen(outcome models.Outcome)
}

// Coexistence arbitrates the shared radio and DMA memory with the companion
// short-range radio.
type Coexistence interface {
	IsPeerConnected() bool
	// RequestPeerRelease asks the peer to free shared memory and waits up to
	// timeout for the acknowledgement.
	RequestPeerRelease(ctx context.Context, timeout time.Duration) error
	// NotifyRadioActive signals that the network radio becomes active (true)
	// or inactive (false).
	NotifyRadioActive(active bool)
}

// FirmwareUpdater fetches and installs a firmware image.
type FirmwareUpdater interface {
	ApplyFirmwareImage(ctx context.Context, info models.FirmwareInfo) error
}

// PowerMonitor reports the power state used to gate firmware updates.
type PowerMonitor interface {
	BatteryPercent() (int, error)
	ExternalPower() (bool, error)
}

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}
