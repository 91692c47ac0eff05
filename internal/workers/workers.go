// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/logger"
)

type Workers struct {
	workers []Worker
	started int
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Start starts every worker in order. When one fails the workers already
// started are stopped again and the error is returned.
func (w *Workers) Start(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Start(ctx); err != nil {
			w.logger.Error().Err(err).Str("func", "Workers.Start").Int("worker", i).Msg("worker failed to start")
			w.Stop()
			return fmt.Errorf("start worker %d: %w", i, err)
		}
		w.started = i + 1
	}
	return nil
}

// Stop stops the started workers in reverse order.
func (w *Workers) Stop() {
	for i := w.started - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.started = 0
}
