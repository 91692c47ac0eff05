// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-device-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestGetAppVersion_ReturnsBuildInfo(t *testing.T) {
	build := models.NewAppBuildInfo("1.4.2", "2026-10-01", "abc123")
	svc := NewAppInfoService(build)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "1.4.2", got.BuildVersion())
	assert.Equal(t, "2026-10-01", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx).BuildVersion())
}
