// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-device-sync/internal/logger"
)

type sessionDrain struct {
	gate   SessionGate
	logger *logger.Logger
}

// NewSessionDrain returns a worker whose Stop cancels the active sync
// session and waits until its CLEANUP has run.
func NewSessionDrain(gate SessionGate, logger *logger.Logger) Worker {
	return &sessionDrain{gate: gate, logger: logger}
}

func (d *sessionDrain) Start(context.Context) error { return nil }

func (d *sessionDrain) Stop() {
	if d.gate.RequestCancel() {
		d.logger.Info().Str("func", "sessionDrain.Stop").Msg("waiting for active sync session to stop")
	}
	d.gate.Wait()
}
