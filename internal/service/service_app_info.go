// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

type appInfoService struct {
	build models.AppBuildInfo
}

func NewAppInfoService(build models.AppBuildInfo) AppInfoService {
	return &appInfoService{build: build}
}

func (s *appInfoService) GetAppVersion(context.Context) models.AppBuildInfo {
	return s.build
}
