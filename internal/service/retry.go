// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/sethvargo/go-retry"
)

// RetryPolicy holds the attempt budget of every remote call site. All
// budgets share one constant delay.
type RetryPolicy struct {
	Bind      int
	Telemetry int
	Manifest  int
	File      int
	Firmware  int
	Connect   int
	Delay     time.Duration
}

func NewRetryPolicy(cfg config.Retry) RetryPolicy {
	return RetryPolicy{
		Bind:      cfg.BindAttempts,
		Telemetry: cfg.TelemetryAttempts,
		Manifest:  cfg.ManifestAttempts,
		File:      cfg.FileAttempts,
		Firmware:  cfg.FirmwareAttempts,
		Connect:   cfg.ConnectAttempts,
		Delay:     cfg.Delay,
	}
}

// withRetry calls fn up to attempts times with delay in between. Errors the
// cloud marks as final, and context errors, stop the loop early.
func withRetry(ctx context.Context, attempts int, delay time.Duration, fn func(ctx context.Context) error) error {
	return retry.Do(ctx, utils.ConstantBackoff(attempts, delay), func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || !adapter.IsTransient(err) {
			return err
		}
		return retry.RetryableError(err)
	})
}
