// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Failure taxonomy of a sync session. Stage errors wrap exactly one of these
// so classifyOutcome can map them to a terminal outcome.
var (
	ErrConnectivity    = errors.New("connectivity failure")
	ErrTimeSync        = errors.New("time sync timeout")
	ErrBinding         = errors.New("binding failure")
	ErrAlreadyBound    = errors.New("device already bound to another account")
	ErrNotBound        = errors.New("device has not completed account binding")
	ErrManifestFetch   = errors.New("manifest fetch failure")
	ErrManifestParse   = errors.New("manifest parse failure")
	ErrDownload        = errors.New("download failure")
	ErrTransaction     = errors.New("transaction failure")
	ErrFirmwareApply   = errors.New("firmware apply failure")
	ErrCancelled       = errors.New("sync cancelled")
	ErrNotProvisioned  = errors.New("device is not provisioned")
	ErrRequiredContent = errors.New("required content could not be fetched")
)

var (
	ErrSyncAlreadyActive = errors.New("sync session already active")
	ErrInvalidMode       = errors.New("invalid sync mode")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// errSessionComplete ends a session early without a failure: after account
// binding and after an applied firmware image.
var errSessionComplete = errors.New("session complete")
