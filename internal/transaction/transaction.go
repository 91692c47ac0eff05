// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transaction swaps a downloaded artifact into its final location so
// that the final path always holds either the complete old content or the
// complete new content.
//
// The protocol for one swap of <final>:
//  1. delete a stale <final>.bak left by an interrupted run;
//  2. rename <final> to <final>.bak, or create the destination directory when
//     <final> does not exist yet;
//  3. rename <final>.tmp to <final>;
//  4. delete <final>.bak, unless the transaction keeps its backup (manifests);
//  5. when step 3 fails, rename <final>.bak back to <final> and leave
//     <final>.tmp in place.
package transaction

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/spf13/afero"
)

const (
	// TempSuffix is appended to the final path for in-flight downloads.
	TempSuffix = ".tmp"
	// BackupSuffix is appended to the final path for the pre-swap copy.
	BackupSuffix = ".bak"
)

// State is the lifecycle state of a Transaction.
type State int

const (
	// StatePending is the state of a transaction that has not been committed.
	StatePending State = iota
	// StateCommitted means the new content is in place.
	StateCommitted
	// StateRolledBack means the final path holds its pre-transaction content.
	StateRolledBack
	// StateFailed means step 3 failed and restoring the backup failed too.
	// The old content survives at the backup path.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled_back"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TempPath returns the temporary path of finalPath.
func TempPath(finalPath string) string { return finalPath + TempSuffix }

// BackupPath returns the backup path of finalPath.
func BackupPath(finalPath string) string { return finalPath + BackupSuffix }

// Transaction ties the final, temporary and backup paths of one file
// replacement together. A Transaction is single use and must not be shared
// between goroutines.
type Transaction struct {
	fs           afero.Fs
	finalPath    string
	tempPath     string
	backupPath   string
	keepBackup   bool
	expectedSize int64
	log          *logger.Logger

	state       State
	hadOriginal bool
}

// Option configures a Transaction.
type Option func(*Transaction)

// WithKeepBackup retains <final>.bak after a successful commit. Used for the
// top-level manifests whose backup is the previous manifest of the next run.
func WithKeepBackup() Option {
	return func(t *Transaction) { t.keepBackup = true }
}

// WithExpectedSize makes Commit verify the size of <final>.tmp first.
func WithExpectedSize(n int64) Option {
	return func(t *Transaction) { t.expectedSize = n }
}

// WithLogger attaches a logger.
func WithLogger(l *logger.Logger) Option {
	return func(t *Transaction) { t.log = l }
}

// New prepares a transaction replacing finalPath with finalPath+TempSuffix.
func New(fs afero.Fs, finalPath string, opts ...Option) *Transaction {
	t := &Transaction{
		fs:           fs,
		finalPath:    finalPath,
		tempPath:     TempPath(finalPath),
		backupPath:   BackupPath(finalPath),
		expectedSize: -1,
		log:          logger.Nop(),
		state:        StatePending,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transaction) State() State       { return t.state }
func (t *Transaction) HadOriginal() bool  { return t.hadOriginal }
func (t *Transaction) FinalPath() string  { return t.finalPath }
func (t *Transaction) TempPath() string   { return t.tempPath }
func (t *Transaction) BackupPath() string { return t.backupPath }

// Commit runs the swap protocol. On any error before step 3 nothing has
// been changed and the state becomes StateRolledBack.
func (t *Transaction) Commit() error {
	log := t.log.With().
		Str("func", "Transaction.Commit").
		Str("path", t.finalPath).
		Logger()

	if t.state != StatePending {
		return fmt.Errorf("%w: state is %s", ErrNotPending, t.state)
	}

	info, err := t.fs.Stat(t.tempPath)
	if err != nil {
		t.state = StateRolledBack
		return fmt.Errorf("%w: %w", ErrTempMissing, err)
	}
	if t.expectedSize >= 0 && info.Size() != t.expectedSize {
		t.state = StateRolledBack
		return fmt.Errorf("%w: expected %d bytes, have %d", ErrSizeMismatch, t.expectedSize, info.Size())
	}

	// step 1
	exists, err := afero.Exists(t.fs, t.backupPath)
	if err != nil {
		t.state = StateRolledBack
		return fmt.Errorf("%w: %w", ErrStaleBackup, err)
	}
	if exists {
		if err = t.fs.Remove(t.backupPath); err != nil {
			t.state = StateRolledBack
			return fmt.Errorf("%w: %w", ErrStaleBackup, err)
		}
		log.Debug().Msg("removed stale backup")
	}

	// step 2
	exists, err = afero.Exists(t.fs, t.finalPath)
	if err != nil {
		t.state = StateRolledBack
		return fmt.Errorf("%w: %w", ErrBackupRename, err)
	}
	if exists {
		if err = t.fs.Rename(t.finalPath, t.backupPath); err != nil {
			t.state = StateRolledBack
			return fmt.Errorf("%w: %w", ErrBackupRename, err)
		}
		t.hadOriginal = true
	} else if err = t.fs.MkdirAll(filepath.Dir(t.finalPath), 0o755); err != nil {
		t.state = StateRolledBack
		return fmt.Errorf("%w: %w", ErrDestinationDir, err)
	}

	// step 3
	if err = t.fs.Rename(t.tempPath, t.finalPath); err != nil {
		commitErr := fmt.Errorf("%w: %w", ErrCommitRename, err)
		if !t.hadOriginal {
			t.state = StateRolledBack
			log.Error().Err(err).Msg("commit rename failed, nothing to restore")
			return commitErr
		}

		// step 5
		if restoreErr := t.fs.Rename(t.backupPath, t.finalPath); restoreErr != nil {
			t.state = StateFailed
			log.Error().Err(restoreErr).Msg("restoring backup failed")
			return errors.Join(commitErr, fmt.Errorf("%w: %w", ErrRestoreFailed, restoreErr))
		}
		t.state = StateRolledBack
		log.Warn().Err(err).Msg("commit rename failed, original restored")
		return commitErr
	}

	t.state = StateCommitted

	// step 4
	if t.hadOriginal && !t.keepBackup {
		if err = t.fs.Remove(t.backupPath); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("failed to delete backup after commit")
		}
	}

	log.Debug().Bool("had_original", t.hadOriginal).Bool("keep_backup", t.keepBackup).Msg("committed")
	return nil
}

// Discard removes <final>.tmp of a transaction that will not be committed.
func (t *Transaction) Discard() error {
	if err := t.fs.Remove(t.tempPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error discarding temp file: %w", err)
	}
	return nil
}

// ReleaseBackup deletes the retained backup of finalPath. A missing backup
// is not an error.
func ReleaseBackup(fs afero.Fs, finalPath string) error {
	if err := fs.Remove(BackupPath(finalPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error releasing backup of %s: %w", finalPath, err)
	}
	return nil
}

// Recover restores <final>.bak when <final> is missing, which only happens
// after a crash between steps 2 and 3. It reports whether a restore happened.
func Recover(fs afero.Fs, finalPath string) (bool, error) {
	finalExists, err := afero.Exists(fs, finalPath)
	if err != nil {
		return false, err
	}
	if finalExists {
		return false, nil
	}

	backupExists, err := afero.Exists(fs, BackupPath(finalPath))
	if err != nil || !backupExists {
		return false, err
	}

	if err = fs.Rename(BackupPath(finalPath), finalPath); err != nil {
		return false, fmt.Errorf("%w: %w", ErrRestoreFailed, err)
	}
	return true, nil
}
