// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import "time"

// SyncMetrics records sync session activity.
type SyncMetrics interface {
	// ObserveSession records one finished session.
	ObserveSession(mode, outcome string, duration time.Duration)
	// ObserveStage records the time spent in one stage. err is the stage
	// failure, nil on success.
	ObserveStage(stage string, duration time.Duration, err error)
	// RecordDownload records one artifact transfer.
	RecordDownload(category string, bytes int64, resumed bool, err error)
	// RecordFirmware records a firmware check result
	// ("up_to_date", "applied", "pending", "failed").
	RecordFirmware(result string)
	// SetActive flips the active session gauge.
	SetActive(active bool)
}

// NoopSyncMetrics discards everything.
type NoopSyncMetrics struct{}

func (NoopSyncMetrics) ObserveSession(string, string, time.Duration) {}
func (NoopSyncMetrics) ObserveStage(string, time.Duration, error)    {}
func (NoopSyncMetrics) RecordDownload(string, int64, bool, error)    {}
func (NoopSyncMetrics) RecordFirmware(string)                        {}
func (NoopSyncMetrics) SetActive(bool)                               {}
