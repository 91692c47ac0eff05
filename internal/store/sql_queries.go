// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// noLimit disables a LIMIT clause in sqlite.
const noLimit = -1

// settings keys
const (
	keyWifiSSID       = "wifi_ssid"
	keyWifiPassword   = "wifi_password"
	keySecretKey      = "secret_key"
	keyTimezone       = "timezone"
	keyBound          = "onboarding_bound"
	keyDeviceToken    = "device_token"
	keyAccountID      = "account_id"
	keyBoundAt        = "bound_at"
	boolTrue          = "1"
	boolFalse         = "0"
	boundAtTimeLayout = "2006-01-02T15:04:05.999999999Z07:00"
)

const (
	getSetting = `
		SELECT value
		FROM settings
		WHERE key = ?;`

	upsertSetting = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	deleteSetting = `
		DELETE FROM settings
		WHERE key = ?;`

	insertTracking = `
		INSERT INTO tracking (kind, payload, recorded_at)
		VALUES (?, ?, ?);`

	getPendingTracking = `
		SELECT
			id,
			kind,
			payload,
			recorded_at
		FROM tracking
		WHERE uploaded_at IS NULL
		ORDER BY id
		LIMIT ?;`

	markTrackingUploaded = `
		UPDATE tracking
		SET uploaded_at = CURRENT_TIMESTAMP
		WHERE id = ? AND uploaded_at IS NULL;`

	saveSession = `
		INSERT INTO sync_sessions (
			session_id,
			mode,
			outcome,
			last_stage,
			error,
			downloaded,
			failed_files,
			firmware_applied,
			started_at,
			finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (session_id) DO NOTHING;`

	getLastSessions = `
		SELECT
			session_id,
			mode,
			outcome,
			last_stage,
			error,
			downloaded,
			failed_files,
			firmware_applied,
			started_at,
			finished_at
		FROM sync_sessions
		ORDER BY finished_at DESC
		LIMIT ?;`
)
