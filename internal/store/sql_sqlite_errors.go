// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"
)

// ErrorClassification tells whether a failed statement may be retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations and schema errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks a statement that failed because another connection
	// held the database (SQLITE_BUSY, SQLITE_LOCKED).
	Retryable
)

const (
	busyAttempts = 3
	busyDelay    = 50 * time.Millisecond
)

// SQLiteErrorClassifier maps go-sqlite3 result codes to an
// [ErrorClassification].
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify unwraps err as a sqlite3.Error. Any other error is NonRetryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}
	return NonRetryable
}

// ClassifySQLiteError maps the primary result code of e.
// See https://www.sqlite.org/rescode.html.
func ClassifySQLiteError(e sqlite3.Error) ErrorClassification {
	switch e.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}

// execRetrying runs a single write statement and repeats it while the
// database reports busy.
func (db *DB) execRetrying(ctx context.Context, query string, args ...any) (sql.Result, error) {
	classifier := NewSQLiteErrorClassifier()

	var res sql.Result
	err := retry.Do(ctx, utils.ConstantBackoff(busyAttempts, busyDelay), func(ctx context.Context) error {
		r, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			if classifier.Classify(err) == Retryable {
				db.logger.Debug().Err(err).Str("func", "DB.execRetrying").Msg("database busy, retrying")
				return retry.RetryableError(err)
			}
			return err
		}
		res = r
		return nil
	})
	return res, err
}
