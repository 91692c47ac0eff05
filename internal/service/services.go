// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/spf13/afero"
)

type Services struct {
	Gateway        SyncGateway
	SyncJob        SyncJob
	DeviceService  DeviceService
	AppInfoService AppInfoService
}

func NewServices(
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	storages *store.Storages,
	cloud adapter.CloudAdapter,
	collab Collaborators,
	downloader ContentDownloader,
	fs afero.Fs,
	m metrics.SyncMetrics,
	log *logger.Logger,
) *Services {
	orchestrator := NewSyncOrchestrator(
		NewOrchestratorConfig(cfg, build),
		cloud,
		storages.Credentials,
		storages.Tracking,
		collab,
		downloader,
		fs,
		m,
		log,
	)
	gateway := NewSyncGateway(orchestrator, storages.History, collab.Clock, m, log)

	return &Services{
		Gateway:        gateway,
		SyncJob:        NewSyncJob(gateway, cfg.Workers.SyncInterval, log),
		DeviceService:  NewDeviceService(storages.Credentials, storages.Tracking, storages.History, log),
		AppInfoService: NewAppInfoService(build),
	}
}
