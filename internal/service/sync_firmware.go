// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/device"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/hashicorp/go-version"
)

// isNewerFirmware reports whether remote is strictly greater than local on
// major.minor.patch. Pre-release and metadata suffixes are ignored.
func isNewerFirmware(local, remote string) (bool, error) {
	l, err := version.NewVersion(local)
	if err != nil {
		return false, fmt.Errorf("parse local firmware version %q: %w", local, err)
	}
	r, err := version.NewVersion(remote)
	if err != nil {
		return false, fmt.Errorf("parse remote firmware version %q: %w", remote, err)
	}
	return r.Core().GreaterThan(l.Core()), nil
}

// powerSufficient allows a firmware apply on external power or with the
// battery at or above minPercent.
func powerSufficient(p device.PowerMonitor, minPercent int) (bool, error) {
	external, extErr := p.ExternalPower()
	if extErr == nil && external {
		return true, nil
	}
	percent, err := p.BatteryPercent()
	if err != nil {
		if errors.Is(err, device.ErrNoBattery) && extErr == nil {
			return false, nil
		}
		return false, errors.Join(extErr, err)
	}
	return percent >= minPercent, nil
}

// checkFirmware applies a newer firmware image when power allows. A failed
// metadata fetch is skipped; an image that was not applied leaves the
// session firmware_pending.
func (o *syncOrchestrator) checkFirmware(ctx context.Context, run *sessionRun) error {
	log := run.log.With().Str("func", "syncOrchestrator.checkFirmware").Logger()

	var info models.FirmwareInfo
	err := withRetry(ctx, o.cfg.Retry.Manifest, o.cfg.Retry.Delay, func(ctx context.Context) error {
		var err error
		info, err = o.adapter.FetchFirmwareInfo(ctx)
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		log.Warn().Err(err).Msg("firmware metadata unavailable, skipping check")
		return nil
	}

	newer, err := isNewerFirmware(o.cfg.FirmwareVersion, info.Version)
	if err != nil {
		log.Warn().Err(err).Msg("cannot compare firmware versions, skipping check")
		return nil
	}
	if !newer {
		log.Debug().Str("local", o.cfg.FirmwareVersion).Str("remote", info.Version).Msg("firmware up to date")
		return nil
	}

	ok, err := powerSufficient(o.collab.Power, o.cfg.MinBatteryPercent)
	if err != nil {
		log.Warn().Err(err).Msg("cannot read power state")
	}
	if !ok {
		log.Info().Str("remote", info.Version).Msg("power insufficient, firmware update deferred")
		o.metrics.RecordFirmware("deferred")
		run.firmwarePending = true
		return nil
	}

	attempt := 0
	err = withRetry(ctx, o.cfg.Retry.Firmware, o.cfg.Retry.Delay, func(ctx context.Context) error {
		attempt++
		err := o.collab.Firmware.ApplyFirmwareImage(ctx, info)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("firmware apply attempt failed")
		}
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		log.Error().Err(fmt.Errorf("%w: %w", ErrFirmwareApply, err)).Int("attempts", attempt).Msg("firmware update failed")
		o.metrics.RecordFirmware("failed")
		run.firmwarePending = true
		return nil
	}

	log.Info().Str("version", info.Version).Msg("firmware applied, device restarts after cleanup")
	o.metrics.RecordFirmware("applied")
	run.firmwareApplied = true
	return errSessionComplete
}
