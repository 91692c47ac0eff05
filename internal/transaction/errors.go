// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transaction

import "errors"

var (
	ErrNotPending     = errors.New("transaction is not pending")
	ErrTempMissing    = errors.New("temporary file is missing")
	ErrSizeMismatch   = errors.New("temporary file size mismatch")
	ErrStaleBackup    = errors.New("failed to remove stale backup")
	ErrBackupRename   = errors.New("failed to move original to backup")
	ErrDestinationDir = errors.New("failed to create destination directory")
	ErrCommitRename   = errors.New("failed to move temporary file into place")
	ErrRestoreFailed  = errors.New("failed to restore original from backup")
)
