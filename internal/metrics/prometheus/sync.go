// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prometheus implements the metrics contracts on top of the global
// registry from the parent package.
package prometheus

import (
	"time"

	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type syncMetrics struct {
	sessionsTotal   *prometheus.CounterVec
	sessionDuration *prometheus.HistogramVec
	stageDuration   *prometheus.HistogramVec
	stageErrors     *prometheus.CounterVec
	downloadsTotal  *prometheus.CounterVec
	downloadBytes   *prometheus.CounterVec
	firmwareTotal   *prometheus.CounterVec
	active          prometheus.Gauge
}

// NewSyncMetrics returns a Prometheus-backed SyncMetrics, or the no-op
// implementation when the registry was not initialized.
func NewSyncMetrics() metrics.SyncMetrics {
	if !metrics.IsEnabled() {
		return metrics.NoopSyncMetrics{}
	}

	reg := metrics.GetRegistry()

	return &syncMetrics{
		sessionsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "device_sync_sessions_total",
				Help: "Total number of sync sessions by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		sessionDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "device_sync_session_duration_seconds",
				Help: "Duration of sync sessions in seconds",
				Buckets: []float64{
					1,    // 1s
					5,    // 5s
					15,   // 15s
					30,   // 30s
					60,   // 1min
					300,  // 5min
					900,  // 15min
					1800, // 30min
				},
			},
			[]string{"mode"},
		),
		stageDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "device_sync_stage_duration_seconds",
				Help:    "Duration of sync stages in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
			},
			[]string{"stage"},
		),
		stageErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "device_sync_stage_errors_total",
				Help: "Total number of failed sync stages",
			},
			[]string{"stage"},
		),
		downloadsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "device_sync_downloads_total",
				Help: "Total number of artifact transfers by category and status",
			},
			[]string{"category", "status"},
		),
		downloadBytes: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "device_sync_download_bytes_total",
				Help: "Total bytes written by artifact transfers",
			},
			[]string{"category"},
		),
		firmwareTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "device_sync_firmware_checks_total",
				Help: "Total number of firmware checks by result",
			},
			[]string{"result"},
		),
		active: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "device_sync_active",
				Help: "1 while a sync session is running",
			},
		),
	}
}

func (m *syncMetrics) ObserveSession(mode, outcome string, duration time.Duration) {
	m.sessionsTotal.WithLabelValues(mode, outcome).Inc()
	m.sessionDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

func (m *syncMetrics) ObserveStage(stage string, duration time.Duration, err error) {
	m.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	if err != nil {
		m.stageErrors.WithLabelValues(stage).Inc()
	}
}

func (m *syncMetrics) RecordDownload(category string, bytes int64, resumed bool, err error) {
	status := "success"
	switch {
	case err != nil:
		status = "error"
	case resumed:
		status = "resumed"
	}

	m.downloadsTotal.WithLabelValues(category, status).Inc()
	if bytes > 0 {
		m.downloadBytes.WithLabelValues(category).Add(float64(bytes))
	}
}

func (m *syncMetrics) RecordFirmware(result string) {
	m.firmwareTotal.WithLabelValues(result).Inc()
}

func (m *syncMetrics) SetActive(active bool) {
	if active {
		m.active.Set(1)
		return
	}
	m.active.Set(0)
}
