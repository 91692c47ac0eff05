// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import "errors"

var (
	ErrNotConnected       = errors.New("network not reachable")
	ErrNoCredentials      = errors.New("no network credentials")
	ErrTimeSyncTimeout    = errors.New("time sync timed out")
	ErrPeerReleaseTimeout = errors.New("peer did not release shared memory in time")
	ErrNoBattery          = errors.New("no battery found")
	ErrFirmwareApply      = errors.New("firmware apply failed")
	ErrFirmwareRollback   = errors.New("firmware rollback failed")
)
