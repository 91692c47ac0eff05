// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSettingNotFound is returned when a settings key has no value.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrNotProvisioned is returned when credentials or the secret key are
	// requested before the device was provisioned.
	ErrNotProvisioned = errors.New("device not provisioned")

	// ErrInvalidProvisioning is returned when a provisioning payload lacks
	// the network name or the secret key.
	ErrInvalidProvisioning = errors.New("invalid provisioning")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
