// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ─────────────────────────────────────────────────────────────────

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "nested", "device.db")}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

var errDB = errors.New("disk I/O error")

// ── CredentialStore (sqlite) ────────────────────────────────────────────────

func TestSettings_NotProvisioned(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.Credentials.ReadCredentials(ctx)
	assert.ErrorIs(t, err, ErrNotProvisioned)

	_, err = s.Credentials.ReadSecretKey(ctx)
	assert.ErrorIs(t, err, ErrNotProvisioned)

	_, err = s.Credentials.ReadTimezone(ctx)
	assert.ErrorIs(t, err, ErrSettingNotFound)

	state, err := s.Credentials.ReadOnboardingState(ctx)
	require.NoError(t, err)
	assert.False(t, state.Bound)
}

func TestSettings_WriteProvisioning(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Credentials.WriteProvisioning(ctx, models.Provisioning{
		SSID: "home", Password: "pw", SecretKey: "k1", Timezone: "Europe/Berlin",
	}))

	creds, err := s.Credentials.ReadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Credentials{SSID: "home", Password: "pw"}, creds)

	key, err := s.Credentials.ReadSecretKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, "k1", key)

	tz, err := s.Credentials.ReadTimezone(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", tz)

	// re-provisioning overwrites and drops the timezone
	require.NoError(t, s.Credentials.WriteProvisioning(ctx, models.Provisioning{SSID: "office", SecretKey: "k2"}))
	creds, err = s.Credentials.ReadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "office", creds.SSID)
	assert.Empty(t, creds.Password)
	_, err = s.Credentials.ReadTimezone(ctx)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettings_WriteProvisioning_Invalid(t *testing.T) {
	s := newSQLiteStorages(t)
	err := s.Credentials.WriteProvisioning(context.Background(), models.Provisioning{SSID: "home"})
	assert.ErrorIs(t, err, ErrInvalidProvisioning)
}

func TestSettings_OnboardingRoundTrip(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	boundAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	require.NoError(t, s.Credentials.WriteOnboardingState(ctx, models.OnboardingState{
		Bound: true, DeviceToken: "tok", AccountID: "acc", BoundAt: &boundAt,
	}))

	state, err := s.Credentials.ReadOnboardingState(ctx)
	require.NoError(t, err)
	assert.True(t, state.Bound)
	assert.Equal(t, "tok", state.DeviceToken)
	assert.Equal(t, "acc", state.AccountID)
	require.NotNil(t, state.BoundAt)
	assert.True(t, boundAt.Equal(*state.BoundAt))

	require.NoError(t, s.Credentials.WriteOnboardingState(ctx, models.OnboardingState{}))
	state, err = s.Credentials.ReadOnboardingState(ctx)
	require.NoError(t, err)
	assert.False(t, state.Bound)
	assert.Nil(t, state.BoundAt)
}

// ── CredentialStore (sqlmock) ───────────────────────────────────────────────

func TestSettings_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(keySecretKey).
		WillReturnError(errDB)

	_, err := repo.ReadSecretKey(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNotProvisioned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettings_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errDB)

	err := repo.WriteOnboardingState(context.Background(), models.OnboardingState{Bound: true})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSettings_ExecErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(keyWifiSSID, "home").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(keyWifiPassword, "pw").
		WillReturnError(errDB)
	mock.ExpectRollback()

	err := repo.WriteProvisioning(context.Background(), models.Provisioning{SSID: "home", Password: "pw", SecretKey: "k"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettings_CommitError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectBegin()
	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO settings").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("DELETE FROM settings").WithArgs(keyBoundAt).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errDB)

	err := repo.WriteOnboardingState(context.Background(), models.OnboardingState{Bound: true})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── TrackingRepository ──────────────────────────────────────────────────────

func TestTracking_QueueLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	var ids []int64
	for _, kind := range []string{"tag_scan", "alarm", "playback"} {
		id, err := s.Tracking.RecordTracking(ctx, models.TrackingRecord{Kind: kind, Payload: `{"n":1}`})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	pending, err := s.Tracking.PendingTracking(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "tag_scan", pending[0].Kind)
	assert.Equal(t, ids[0], pending[0].ID)
	assert.False(t, pending[0].RecordedAt.IsZero())

	require.NoError(t, s.Tracking.MarkTrackingUploaded(ctx, ids[:2]))

	pending, err = s.Tracking.PendingTracking(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "playback", pending[0].Kind)

	require.NoError(t, s.Tracking.MarkTrackingUploaded(ctx, nil))
}

func TestTracking_InsertError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrackingRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO tracking").WillReturnError(errDB)

	_, err := repo.RecordTracking(context.Background(), models.TrackingRecord{Kind: "x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestTracking_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrackingRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM tracking").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.PendingTracking(context.Background(), 10)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestTracking_PrepareError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrackingRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectPrepare("UPDATE tracking").WillReturnError(errDB)
	mock.ExpectRollback()

	err := repo.MarkTrackingUploaded(context.Background(), []int64{1})
	assert.ErrorIs(t, err, ErrPreparingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── HistoryRepository ───────────────────────────────────────────────────────

func TestHistory_SaveAndList(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	for i, outcome := range []models.Outcome{models.OutcomeSuccess, models.OutcomeCancelled, models.OutcomeFirmwarePending} {
		require.NoError(t, s.History.SaveSession(ctx, models.SessionRecord{
			SessionID:  string(rune('a' + i)),
			Mode:       models.SyncModeFull,
			Outcome:    outcome,
			LastStage:  models.StageCleanup,
			Downloaded: i,
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Minute),
		}))
	}
	// duplicate ids are ignored
	require.NoError(t, s.History.SaveSession(ctx, models.SessionRecord{SessionID: "a", StartedAt: base, FinishedAt: base}))

	got, err := s.History.LastSessions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].SessionID)
	assert.Equal(t, models.OutcomeFirmwarePending, got[0].Outcome)
	assert.Equal(t, models.StageCleanup, got[0].LastStage)
	assert.Equal(t, 2, got[0].Downloaded)
	assert.Equal(t, "b", got[1].SessionID)

	all, err := s.History.LastSessions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHistory_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM sync_sessions").WillReturnError(sql.ErrConnDone)

	_, err := repo.LastSessions(context.Background(), 5)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestHistory_SaveError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO sync_sessions").WillReturnError(errDB)

	err := repo.SaveSession(context.Background(), models.SessionRecord{SessionID: "s"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
