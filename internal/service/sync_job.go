// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/go-co-op/gocron"
)

type syncJob struct {
	gateway  SyncGateway
	interval time.Duration
	log      *logger.Logger

	mu        sync.Mutex
	scheduler *gocron.Scheduler
}

// NewSyncJob creates a job that requests a FULL sync every interval. A zero
// interval disables it. The job is idle until Start is called.
func NewSyncJob(gateway SyncGateway, interval time.Duration, log *logger.Logger) SyncJob {
	return &syncJob{gateway: gateway, interval: interval, log: log}
}

// Start stops any previously running schedule and starts a new one. The
// first trigger fires one interval after Start. Triggers that find a session
// active are skipped.
func (j *syncJob) Start(ctx context.Context) error {
	if j.interval <= 0 {
		j.log.Info().Str("func", "syncJob.Start").Msg("periodic sync disabled")
		return nil
	}

	j.Stop()

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	s.WaitForScheduleAll()
	if _, err := s.Every(j.interval).Do(j.trigger, ctx); err != nil {
		return err
	}

	j.mu.Lock()
	j.scheduler = s
	j.mu.Unlock()

	s.StartAsync()
	j.log.Info().Str("func", "syncJob.Start").Dur("interval", j.interval).Msg("periodic sync scheduled")
	return nil
}

func (j *syncJob) trigger(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	id, err := j.gateway.StartSync(ctx, models.SyncModeFull, nil)
	if err != nil {
		if errors.Is(err, ErrSyncAlreadyActive) {
			j.log.Debug().Str("func", "syncJob.trigger").Msg("session active, periodic sync skipped")
			return
		}
		j.log.Error().Err(err).Str("func", "syncJob.trigger").Msg("periodic sync not started")
		return
	}
	j.log.Debug().Str("func", "syncJob.trigger").Str("session_id", id).Msg("periodic sync started")
}

// Stop halts the schedule. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	s := j.scheduler
	j.scheduler = nil
	j.mu.Unlock()

	if s != nil {
		s.Stop()
	}
}
