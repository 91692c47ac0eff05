// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// SyncMode selects which stages a sync session runs and which completion
// screen is shown at the end of it.
type SyncMode int

const (
	// SyncModeFull runs every stage, including first-time account binding.
	SyncModeFull SyncMode = iota
	// SyncModeShortRangeTag is triggered by a short-range (NFC) tag and only
	// refreshes account content.
	SyncModeShortRangeTag
	// SyncModeProximityRadio is triggered by a proximity-radio (BLE) command and
	// uploads telemetry before refreshing account content.
	SyncModeProximityRadio
)

var syncModeNames = []string{
	"full",
	"short_range_tag",
	"proximity_radio",
}

func (m SyncMode) String() string {
	if m < 0 || int(m) >= len(syncModeNames) {
		return "unknown"
	}
	return syncModeNames[m]
}

// ParseSyncMode converts the textual representation produced by
// [SyncMode.String] back into a SyncMode. Matching is case-insensitive.
func ParseSyncMode(s string) (SyncMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range syncModeNames {
		if name == s {
			return SyncMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sync mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m SyncMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SyncMode) UnmarshalText(b []byte) error {
	mode, err := ParseSyncMode(string(b))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Stage is an ordinal progress marker of a sync session. It is exposed for
// observation only; the orchestrator never branches on it.
type Stage int

const (
	StagePreparing Stage = iota
	StageConnecting
	StageTimeSync
	StageAccountBinding
	StageResourceSync
	StageFirmwareCheck
	StageTelemetryUpload
	StageAccountContentSync
	StageCleanup
)

var stageNames = []string{
	"preparing",
	"connecting",
	"time_sync",
	"account_binding",
	"resource_sync",
	"firmware_check",
	"telemetry_upload",
	"account_content_sync",
	"cleanup",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(b []byte) error {
	i, err := parseName(stageNames, "stage", string(b))
	if err != nil {
		return err
	}
	*s = Stage(i)
	return nil
}

// Outcome is the single terminal classification reported after CLEANUP.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeNetworkError
	OutcomeSyncError
	OutcomeFirmwarePending
	OutcomeCancelled
)

var outcomeNames = []string{
	"success",
	"network_error",
	"sync_error",
	"firmware_pending",
	"cancelled",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(b []byte) error {
	i, err := parseName(outcomeNames, "outcome", string(b))
	if err != nil {
		return err
	}
	*o = Outcome(i)
	return nil
}

func parseName(names []string, kind, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

// SyncStatus is the externally observable state of the sync engine.
type SyncStatus struct {
	Active          bool       `json:"active"`
	SessionID       string     `json:"session_id,omitempty"`
	Mode            SyncMode   `json:"mode"`
	Stage           Stage      `json:"stage"`
	LastOutcome     *Outcome   `json:"last_outcome,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
	FirmwareApplied bool       `json:"firmware_applied"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
}

// SessionRecord is one finished session as stored in the local history.
type SessionRecord struct {
	SessionID       string    `json:"session_id"`
	Mode            SyncMode  `json:"mode"`
	Outcome         Outcome   `json:"outcome"`
	LastStage       Stage     `json:"last_stage"`
	Error           string    `json:"error,omitempty"`
	Downloaded      int       `json:"downloaded"`
	FailedFiles     int       `json:"failed_files"`
	FirmwareApplied bool      `json:"firmware_applied"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}

// DownloadResult describes one call of the resilient downloader.
type DownloadResult struct {
	// BytesWritten is the number of bytes written to the temp file by this call.
	BytesWritten int64
	// TotalSize is the size of the temp file after the call.
	TotalSize int64
	// Resumed is true when the call continued a partial temp file.
	Resumed bool
	// Attempts is the number of transfer attempts made.
	Attempts int
}
