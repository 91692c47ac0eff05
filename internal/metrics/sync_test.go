// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopSyncMetrics_DoesNotPanic(t *testing.T) {
	var m SyncMetrics = NoopSyncMetrics{}
	assert.NotPanics(t, func() {
		m.ObserveSession("full", "success", time.Second)
		m.ObserveStage("cleanup", time.Millisecond, nil)
		m.RecordDownload("audio_pack", 10, false, nil)
		m.RecordFirmware("up_to_date")
		m.SetActive(false)
	})
}

func TestHandler_DisabledReturnsNotFound(t *testing.T) {
	if IsEnabled() {
		t.Skip("registry already initialized in this process")
	}

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
