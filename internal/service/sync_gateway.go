// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/device"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

const historyWriteTimeout = 5 * time.Second

type syncGateway struct {
	runner  SessionRunner
	history store.HistoryRepository
	handle  SessionHandle
	ids     *utils.UUIDGenerator
	clock   device.Clock
	metrics metrics.SyncMetrics
	log     *logger.Logger

	wg sync.WaitGroup

	mu   sync.RWMutex
	last *models.SessionRecord
}

// NewSyncGateway returns the single-session gateway. history may be nil.
func NewSyncGateway(runner SessionRunner, history store.HistoryRepository, clock device.Clock, m metrics.SyncMetrics, log *logger.Logger) SyncGateway {
	if clock == nil {
		clock = device.SystemClock{}
	}
	if m == nil {
		m = metrics.NoopSyncMetrics{}
	}
	return &syncGateway{
		runner:  runner,
		history: history,
		ids:     utils.NewUUIDGenerator(),
		clock:   clock,
		metrics: m,
		log:     log,
	}
}

func (g *syncGateway) StartSync(ctx context.Context, mode models.SyncMode, cb func(models.SessionRecord)) (string, error) {
	if _, ok := stagesByMode[mode]; !ok {
		return "", ErrInvalidMode
	}

	session := NewSyncSession(g.ids.Generate(), mode, g.clock.Now(), cb)
	if !g.handle.TryAcquire(session) {
		return "", ErrSyncAlreadyActive
	}

	g.metrics.SetActive(true)
	g.wg.Add(1)
	go g.run(context.WithoutCancel(ctx), session)

	g.log.Info().Str("func", "syncGateway.StartSync").Str("session_id", session.ID).Stringer("mode", mode).Msg("sync session started")
	return session.ID, nil
}

func (g *syncGateway) run(ctx context.Context, session *SyncSession) {
	defer g.wg.Done()

	record := g.runner.Run(utils.WithSessionID(ctx, session.ID), session)
	g.persist(ctx, record)

	g.mu.Lock()
	g.last = &record
	g.mu.Unlock()

	g.handle.Release(session)
	g.metrics.SetActive(false)

	if session.Callback != nil {
		session.Callback(record)
	}
}

func (g *syncGateway) persist(ctx context.Context, record models.SessionRecord) {
	if g.history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, historyWriteTimeout)
	defer cancel()
	if err := g.history.SaveSession(ctx, record); err != nil {
		g.log.Warn().Err(err).Str("func", "syncGateway.persist").Str("session_id", record.SessionID).Msg("cannot save session history")
	}
}

func (g *syncGateway) IsSyncActive() bool {
	return g.handle.IsActive()
}

func (g *syncGateway) RequestCancel() bool {
	ok := g.handle.RequestCancel()
	if ok {
		g.log.Info().Str("func", "syncGateway.RequestCancel").Msg("cancellation requested")
	}
	return ok
}

func (g *syncGateway) Status() models.SyncStatus {
	var status models.SyncStatus

	if current := g.handle.Current(); current != nil {
		startedAt := current.StartedAt
		status.Active = true
		status.SessionID = current.ID
		status.Mode = current.Mode
		status.Stage = current.Stage()
		status.StartedAt = &startedAt
	}

	g.mu.RLock()
	last := g.last
	g.mu.RUnlock()
	if last == nil {
		return status
	}

	outcome := last.Outcome
	status.LastOutcome = &outcome
	status.LastError = last.Error
	status.FirmwareApplied = last.FirmwareApplied
	if !status.Active {
		startedAt, finishedAt := last.StartedAt, last.FinishedAt
		status.SessionID = last.SessionID
		status.Mode = last.Mode
		status.Stage = last.LastStage
		status.StartedAt = &startedAt
		status.FinishedAt = &finishedAt
	}
	return status
}

func (g *syncGateway) Wait() {
	g.wg.Wait()
}
