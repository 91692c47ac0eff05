// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_Lookup(t *testing.T) {
	m := NewManifest("1", []ManifestEntry{
		{Path: "icons/a.png", Size: 1000},
		{Path: "icons/b.png", Size: 2000},
	})

	e, ok := m.Lookup("icons/b.png")
	require.True(t, ok)
	assert.Equal(t, int64(2000), e.Size)

	_, ok = m.Lookup("icons/c.png")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestManifest_Lookup_WithoutIndex(t *testing.T) {
	m := Manifest{Entries: []ManifestEntry{{Path: "x", Size: 1}}}

	e, ok := m.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), e.Size)
}

func TestSyncPlan_DownloadsKeepOrder(t *testing.T) {
	plan := SyncPlan{Items: []PlanItem{
		{Entry: ManifestEntry{Path: "1"}, Class: New, Download: true},
		{Entry: ManifestEntry{Path: "2"}, Class: Unchanged},
		{Entry: ManifestEntry{Path: "3"}, Class: Modified, Download: true},
	}}

	got := plan.Downloads()
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Entry.Path)
	assert.Equal(t, "3", got[1].Entry.Path)
	assert.Equal(t, 1, plan.Count(Unchanged))
}

func TestSyncMode_ParseRoundTrip(t *testing.T) {
	for _, m := range []SyncMode{SyncModeFull, SyncModeShortRangeTag, SyncModeProximityRadio} {
		got, err := ParseSyncMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseSyncMode("bogus")
	assert.Error(t, err)
}

func TestSyncMode_JSON(t *testing.T) {
	var body struct {
		Mode SyncMode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"PROXIMITY_RADIO"}`), &body))
	assert.Equal(t, SyncModeProximityRadio, body.Mode)
}

func TestStageAndOutcome_String(t *testing.T) {
	assert.Equal(t, "account_content_sync", StageAccountContentSync.String())
	assert.Equal(t, "firmware_pending", OutcomeFirmwarePending.String())
	assert.Equal(t, "unknown", Stage(42).String())
	assert.Equal(t, "new", New.String())
}

func TestSessionRecord_JSON(t *testing.T) {
	in := SessionRecord{SessionID: "s", Mode: SyncModeShortRangeTag, Outcome: OutcomeCancelled, LastStage: StageCleanup}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"outcome":"cancelled"`)
	assert.Contains(t, string(data), `"last_stage":"cleanup"`)

	var out SessionRecord
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`{"outcome":"exploded"}`), &out))
}
