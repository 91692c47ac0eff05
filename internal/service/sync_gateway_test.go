// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/mock"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// blockingRunner holds every session until release is closed, or until the
// session is cancelled when waitCancel is set.
type blockingRunner struct {
	release    chan struct{}
	started    chan *SyncSession
	waitCancel bool
	runs       atomic.Int32
	ctx        context.Context
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{release: make(chan struct{}), started: make(chan *SyncSession, 8)}
}

func (r *blockingRunner) Run(ctx context.Context, session *SyncSession) models.SessionRecord {
	r.runs.Add(1)
	r.ctx = ctx
	session.setStage(models.StageConnecting)
	r.started <- session

	if r.waitCancel {
		for !session.CancelRequested() {
			time.Sleep(time.Millisecond)
		}
		return models.SessionRecord{SessionID: session.ID, Mode: session.Mode, Outcome: models.OutcomeCancelled, LastStage: models.StageCleanup}
	}

	<-r.release
	return models.SessionRecord{
		SessionID: session.ID,
		Mode:      session.Mode,
		Outcome:   models.OutcomeSuccess,
		LastStage: models.StageCleanup,
		StartedAt: session.StartedAt,
	}
}

func newTestGateway(runner SessionRunner, history *mock.MockHistoryRepository) SyncGateway {
	if history == nil {
		return NewSyncGateway(runner, nil, fixedClock{testNow}, nil, logger.Nop())
	}
	return NewSyncGateway(runner, history, fixedClock{testNow}, nil, logger.Nop())
}

func waitStarted(t *testing.T, r *blockingRunner) *SyncSession {
	t.Helper()
	select {
	case s := <-r.started:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("session did not start")
		return nil
	}
}

// ── StartSync ──

func TestSyncGateway_RejectsWhileActive(t *testing.T) {
	runner := newBlockingRunner()
	g := newTestGateway(runner, nil)

	id, err := g.StartSync(context.Background(), models.SyncModeFull, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	waitStarted(t, runner)
	assert.True(t, g.IsSyncActive())

	_, err = g.StartSync(context.Background(), models.SyncModeShortRangeTag, nil)
	assert.ErrorIs(t, err, ErrSyncAlreadyActive)

	close(runner.release)
	g.Wait()

	assert.False(t, g.IsSyncActive())
	assert.EqualValues(t, 1, runner.runs.Load())
}

func TestSyncGateway_ConcurrentStartsOneWins(t *testing.T) {
	runner := newBlockingRunner()
	g := newTestGateway(runner, nil)

	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.StartSync(context.Background(), models.SyncModeFull, nil)
			switch {
			case err == nil:
				accepted.Add(1)
			case errors.Is(err, ErrSyncAlreadyActive):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, accepted.Load())
	assert.EqualValues(t, 31, rejected.Load())

	close(runner.release)
	g.Wait()
}

func TestSyncGateway_InvalidMode(t *testing.T) {
	g := newTestGateway(newBlockingRunner(), nil)

	_, err := g.StartSync(context.Background(), models.SyncMode(42), nil)

	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.False(t, g.IsSyncActive())
}

func TestSyncGateway_CallbackAfterRelease(t *testing.T) {
	runner := newBlockingRunner()
	g := newTestGateway(runner, nil)

	type observed struct {
		record       models.SessionRecord
		activeInside bool
		restartErr   error
	}
	done := make(chan observed, 1)
	calls := atomic.Int32{}

	id, err := g.StartSync(context.Background(), models.SyncModeFull, func(record models.SessionRecord) {
		calls.Add(1)
		o := observed{record: record, activeInside: g.IsSyncActive()}
		// a new session may be started from the callback
		_, o.restartErr = g.StartSync(context.Background(), models.SyncModeShortRangeTag, nil)
		done <- o
	})
	require.NoError(t, err)
	waitStarted(t, runner)
	close(runner.release)

	o := <-done
	g.Wait()

	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, id, o.record.SessionID)
	assert.Equal(t, models.OutcomeSuccess, o.record.Outcome)
	assert.False(t, o.activeInside)
	assert.NoError(t, o.restartErr)
}

func TestSyncGateway_DetachedFromCallerContext(t *testing.T) {
	runner := newBlockingRunner()
	g := newTestGateway(runner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := g.StartSync(ctx, models.SyncModeFull, nil)
	require.NoError(t, err)
	session := waitStarted(t, runner)
	cancel()

	assert.True(t, g.IsSyncActive())
	assert.False(t, session.CancelRequested())
	assert.NoError(t, runner.ctx.Err())
	sessionID, ok := utils.GetSessionIDFromContext(runner.ctx)
	assert.True(t, ok)
	assert.Equal(t, session.ID, sessionID)

	close(runner.release)
	g.Wait()
}

// ── Cancellation ──

func TestSyncGateway_RequestCancel(t *testing.T) {
	runner := newBlockingRunner()
	runner.waitCancel = true
	g := newTestGateway(runner, nil)

	assert.False(t, g.RequestCancel(), "nothing to cancel")

	var got models.SessionRecord
	done := make(chan struct{})
	_, err := g.StartSync(context.Background(), models.SyncModeFull, func(r models.SessionRecord) {
		got = r
		close(done)
	})
	require.NoError(t, err)
	waitStarted(t, runner)

	assert.True(t, g.RequestCancel())
	assert.True(t, g.RequestCancel(), "idempotent while the session runs")

	<-done
	g.Wait()
	assert.Equal(t, models.OutcomeCancelled, got.Outcome)
	assert.False(t, g.RequestCancel())
}

// ── Status and history ──

func TestSyncGateway_Status(t *testing.T) {
	runner := newBlockingRunner()
	g := newTestGateway(runner, nil)

	assert.Equal(t, models.SyncStatus{}, g.Status())

	id, err := g.StartSync(context.Background(), models.SyncModeProximityRadio, nil)
	require.NoError(t, err)
	waitStarted(t, runner)

	active := g.Status()
	assert.True(t, active.Active)
	assert.Equal(t, id, active.SessionID)
	assert.Equal(t, models.SyncModeProximityRadio, active.Mode)
	assert.Equal(t, models.StageConnecting, active.Stage)
	assert.Nil(t, active.LastOutcome)
	require.NotNil(t, active.StartedAt)
	assert.Equal(t, testNow, *active.StartedAt)

	close(runner.release)
	g.Wait()

	finished := g.Status()
	assert.False(t, finished.Active)
	assert.Equal(t, id, finished.SessionID)
	assert.Equal(t, models.StageCleanup, finished.Stage)
	require.NotNil(t, finished.LastOutcome)
	assert.Equal(t, models.OutcomeSuccess, *finished.LastOutcome)
	assert.NotNil(t, finished.FinishedAt)
}

func TestSyncGateway_PersistsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryRepository(ctrl)
	runner := newBlockingRunner()
	g := newTestGateway(runner, history)

	var saved models.SessionRecord
	history.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r models.SessionRecord) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		saved = r
		return nil
	})

	id, err := g.StartSync(context.Background(), models.SyncModeFull, nil)
	require.NoError(t, err)
	close(runner.release)
	g.Wait()

	assert.Equal(t, id, saved.SessionID)
}

func TestSyncGateway_HistoryFailureDoesNotBlockRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryRepository(ctrl)
	history.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	runner := newBlockingRunner()
	g := newTestGateway(runner, history)

	_, err := g.StartSync(context.Background(), models.SyncModeFull, nil)
	require.NoError(t, err)
	close(runner.release)
	g.Wait()

	assert.False(t, g.IsSyncActive())
	require.NotNil(t, g.Status().LastOutcome)
}
