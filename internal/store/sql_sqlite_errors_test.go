// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked wrapped", err: fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
		{name: "other", err: errors.New("boom"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestHistory_SaveRetriesWhileBusy(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db, db.logger)

	mock.ExpectExec("INSERT INTO sync_sessions").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec("INSERT INTO sync_sessions").WillReturnResult(sqlmock.NewResult(1, 1))

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	err := repo.SaveSession(context.Background(), models.SessionRecord{SessionID: "s-1", StartedAt: now, FinishedAt: now})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistory_SaveBusyExhausted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db, db.logger)

	for range busyAttempts {
		mock.ExpectExec("INSERT INTO sync_sessions").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	}

	err := repo.SaveSession(context.Background(), models.SessionRecord{SessionID: "s-1"})

	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
