// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/device"
	"github.com/MKhiriev/go-device-sync/internal/download"
	"github.com/MKhiriev/go-device-sync/internal/handler"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/metrics/prometheus"
	"github.com/MKhiriev/go-device-sync/internal/scratch"
	"github.com/MKhiriev/go-device-sync/internal/server"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/internal/workers"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/spf13/afero"
)

const firmwareImageName = "firmware.img"

type App struct {
	storages *store.Storages
	services *service.Services
	workers  *workers.Workers
	notifier *device.ConsoleNotifier
	logger   *logger.Logger
}

// NewApp builds every component of the daemon. Nothing runs until Run.
func NewApp(cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}
	syncMetrics := prometheus.NewSyncMetrics()

	fs := afero.NewOsFs()
	if err := fs.MkdirAll(cfg.Storage.Files.RootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create content root: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	cloud, err := adapter.NewHTTPCloudAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create cloud adapter: %w", err)
	}

	probe, err := probeAddress(cfg)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	buf := scratch.New(0)
	httpClient := utils.NewHTTPClient(cfg.Adapter.DownloadTimeout)
	downloader := download.New(httpClient, fs,
		download.WithAttempts(cfg.Retry.FileAttempts),
		download.WithRetryDelay(cfg.Retry.Delay),
		download.WithScratch(buf),
		download.WithMetrics(syncMetrics),
		download.WithLogger(log),
	)
	// firmware attempts are counted by the orchestrator
	imageDownloader := download.New(httpClient, fs,
		download.WithAttempts(1),
		download.WithScratch(buf),
		download.WithMetrics(syncMetrics),
		download.WithLogger(log),
	)

	connectivity := device.NewNetworkConnectivity(probe, log)
	connectivity.OnRelease(func() { httpClient.GetClient().CloseIdleConnections() })

	peer := device.NewPeerCoordinator(log)
	notifier := device.NewConsoleNotifier(os.Stdout)
	clock := device.SystemClock{}

	collab := service.Collaborators{
		Connectivity: connectivity,
		TimeSync:     device.NewClockTimeSync(clock, cfg.Device.TimeSyncTimeout, log),
		Notifier:     notifier,
		Coexistence:  peer,
		Firmware: device.NewImageUpdater(imageDownloader, fs,
			filepath.Join(cfg.Storage.Files.RootDir, firmwareImageName),
			cfg.App.FirmwareTargetPath, log),
		Power: device.NewSysfsPower(fs, cfg.Device.PowerSupplyDir),
		Clock: clock,
	}

	services := service.NewServices(*cfg, build, storages, cloud, collab, downloader, fs, syncMetrics, log)

	handlers, err := handler.NewHandlers(services, peer, buf, cfg.Server, log)
	if err != nil {
		notifier.Close()
		_ = storages.Close()
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		notifier.Close()
		_ = storages.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		workers: workers.NewWorkers(log,
			workers.NewServerWorker(srv),
			services.SyncJob,
			workers.NewSessionDrain(services.Gateway, log),
		),
		notifier: notifier,
		logger:   log,
	}, nil
}

// Run starts the workers and blocks until SIGINT or SIGTERM. On shutdown the
// active session is cancelled and awaited before the scheduler and the
// control API stop.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.workers.Start(ctx); err != nil {
		a.close()
		return err
	}
	a.logger.Info().Msg("sync daemon started")

	<-ctx.Done()
	a.logger.Info().Msg("shutdown signal received")

	a.workers.Stop()
	return a.close()
}

func (a *App) close() error {
	a.notifier.Close()
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close storages: %w", err)
	}
	a.logger.Info().Msg("sync daemon stopped")
	return nil
}

// probeAddress returns the configured probe address or the host:port of the
// cloud API.
func probeAddress(cfg *config.StructuredConfig) (string, error) {
	if cfg.Device.ProbeAddress != "" {
		return cfg.Device.ProbeAddress, nil
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Hostname() == "" {
		return "", fmt.Errorf("cannot derive probe address from %q: %w", cfg.Adapter.HTTPAddress, ErrNoProbeAddress)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
