// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

const trackingBatchSize = 100

// uploadTelemetry sends the device info snapshot and the pending tracking
// records. Failures are logged and never fail the session.
func (o *syncOrchestrator) uploadTelemetry(ctx context.Context, run *sessionRun) error {
	log := run.log.With().Str("func", "syncOrchestrator.uploadTelemetry").Logger()

	info := o.deviceInfo(run)
	err := withRetry(ctx, o.cfg.Retry.Telemetry, o.cfg.Retry.Delay, func(ctx context.Context) error {
		return o.adapter.UploadDeviceInfo(ctx, info)
	})
	if err != nil {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		log.Warn().Err(err).Msg("device info upload failed")
	}

	records, err := o.tracking.PendingTracking(ctx, trackingBatchSize)
	if err != nil {
		log.Warn().Err(err).Msg("cannot read pending tracking records")
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	upload := models.TrackingUpload{DeviceID: o.cfg.DeviceID, Records: records, Length: len(records)}
	err = withRetry(ctx, o.cfg.Retry.Telemetry, o.cfg.Retry.Delay, func(ctx context.Context) error {
		return o.adapter.UploadTracking(ctx, upload)
	})
	if err != nil {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		log.Warn().Err(err).Int("records", len(records)).Msg("tracking upload failed")
		return nil
	}

	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	if err = o.tracking.MarkTrackingUploaded(ctx, ids); err != nil {
		log.Warn().Err(err).Msg("cannot mark tracking records uploaded")
		return nil
	}
	log.Info().Int("records", len(records)).Msg("tracking records uploaded")
	return nil
}

func (o *syncOrchestrator) deviceInfo(run *sessionRun) models.DeviceInfo {
	info := models.DeviceInfo{
		DeviceID:        o.cfg.DeviceID,
		FirmwareVersion: o.cfg.FirmwareVersion,
		ResourceVersion: o.content.resourceVersion(),
		Mode:            run.session.Mode.String(),
		ReportedAt:      o.collab.Clock.Now().UTC(),
	}
	if pct, err := o.collab.Power.BatteryPercent(); err == nil {
		info.BatteryPercent = pct
	}
	if ext, err := o.collab.Power.ExternalPower(); err == nil {
		info.ExternalPower = ext
	}
	return info
}
