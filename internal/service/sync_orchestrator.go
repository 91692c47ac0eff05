// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/device"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/spf13/afero"
)

// SessionRunner runs one session to completion and returns its record.
type SessionRunner interface {
	Run(ctx context.Context, session *SyncSession) models.SessionRecord
}

// ContentDownloader fetches manifest entries to <dest>.tmp.
type ContentDownloader interface {
	DownloadEntry(ctx context.Context, entry models.ManifestEntry, dest string) (models.DownloadResult, error)
}

// Collaborators are the host-side dependencies of a sync session.
type Collaborators struct {
	Connectivity device.Connectivity
	TimeSync     device.TimeSync
	Notifier     device.ProgressNotifier
	Coexistence  device.Coexistence
	Firmware     device.FirmwareUpdater
	Power        device.PowerMonitor
	Clock        device.Clock
}

// OrchestratorConfig is the static part of every session.
type OrchestratorConfig struct {
	DeviceID           string
	FirmwareVersion    string
	RootDir            string
	MinBatteryPercent  int
	PeerReleaseTimeout time.Duration
	Retry              RetryPolicy
}

// NewOrchestratorConfig derives the session settings from the daemon
// configuration. The configured firmware version wins over the build one.
func NewOrchestratorConfig(cfg config.StructuredConfig, build models.AppBuildInfo) OrchestratorConfig {
	version := cfg.App.FirmwareVersion
	if version == "" {
		version = build.BuildVersion()
	}
	return OrchestratorConfig{
		DeviceID:           cfg.App.DeviceID,
		FirmwareVersion:    version,
		RootDir:            cfg.Storage.Files.RootDir,
		MinBatteryPercent:  cfg.App.MinBatteryPercent,
		PeerReleaseTimeout: cfg.Device.PeerReleaseTimeout,
		Retry:              NewRetryPolicy(cfg.Retry),
	}
}

// stagesByMode lists the stages each mode runs, in order. CLEANUP is not
// listed; it always runs last.
var stagesByMode = map[models.SyncMode][]models.Stage{
	models.SyncModeFull: {
		models.StagePreparing,
		models.StageConnecting,
		models.StageTimeSync,
		models.StageAccountBinding,
		models.StageResourceSync,
		models.StageFirmwareCheck,
		models.StageTelemetryUpload,
		models.StageAccountContentSync,
	},
	models.SyncModeShortRangeTag: {
		models.StagePreparing,
		models.StageConnecting,
		models.StageTimeSync,
		models.StageAccountContentSync,
	},
	models.SyncModeProximityRadio: {
		models.StagePreparing,
		models.StageConnecting,
		models.StageTimeSync,
		models.StageTelemetryUpload,
		models.StageAccountContentSync,
	},
}

// sessionRun is the mutable state of one session, owned by the worker.
type sessionRun struct {
	session *SyncSession
	log     *logger.Logger

	creds      models.Credentials
	secretKey  string
	timezone   string
	onboarding models.OnboardingState

	radioClaimed    bool
	firmwarePending bool
	firmwareApplied bool
	downloaded      int
	failedFiles     int
}

func (r *sessionRun) addResult(res contentResult) {
	r.downloaded += res.Downloaded
	r.failedFiles += res.Failed
}

type syncOrchestrator struct {
	cfg         OrchestratorConfig
	adapter     adapter.CloudAdapter
	credentials store.CredentialStore
	tracking    store.TrackingRepository
	collab      Collaborators
	content     *contentSyncer
	metrics     metrics.SyncMetrics
	log         *logger.Logger
}

// NewSyncOrchestrator builds the stage machine. fs holds the content tree
// rooted at cfg.RootDir.
func NewSyncOrchestrator(
	cfg OrchestratorConfig,
	cloud adapter.CloudAdapter,
	credentials store.CredentialStore,
	tracking store.TrackingRepository,
	collab Collaborators,
	downloader ContentDownloader,
	fs afero.Fs,
	m metrics.SyncMetrics,
	log *logger.Logger,
) SessionRunner {
	if m == nil {
		m = metrics.NoopSyncMetrics{}
	}
	if collab.Clock == nil {
		collab.Clock = device.SystemClock{}
	}
	return &syncOrchestrator{
		cfg:         cfg,
		adapter:     cloud,
		credentials: credentials,
		tracking:    tracking,
		collab:      collab,
		content:     newContentSyncer(fs, cfg.RootDir, cfg.FirmwareVersion, cloud, downloader, cfg.Retry),
		metrics:     m,
		log:         log,
	}
}

// Run executes the stages of session.Mode and then CLEANUP, exactly once,
// whatever happened before. It never returns an error: the result is the
// record and its terminal outcome.
func (o *syncOrchestrator) Run(ctx context.Context, session *SyncSession) models.SessionRecord {
	log := o.log.WithSession(session.ID, session.Mode.String())
	ctx = log.WithContext(ctx)
	run := &sessionRun{session: session, log: log}

	err := o.runStages(ctx, run)
	o.cleanup(run)

	cancelled := session.CancelRequested() || ctx.Err() != nil
	outcome := classifyOutcome(err, cancelled, run.firmwarePending)
	finishedAt := o.collab.Clock.Now()

	record := models.SessionRecord{
		SessionID:       session.ID,
		Mode:            session.Mode,
		Outcome:         outcome,
		LastStage:       session.Stage(),
		Downloaded:      run.downloaded,
		FailedFiles:     run.failedFiles,
		FirmwareApplied: run.firmwareApplied,
		StartedAt:       session.StartedAt,
		FinishedAt:      finishedAt,
	}
	if err != nil && !errors.Is(err, errSessionComplete) {
		record.Error = err.Error()
	}

	o.collab.Notifier.SetCompletionScreen(outcome)
	o.metrics.ObserveSession(session.Mode.String(), outcome.String(), finishedAt.Sub(session.StartedAt))

	event := log.Info()
	if outcome != models.OutcomeSuccess {
		event = log.Warn().Err(err)
	}
	event.Str("func", "syncOrchestrator.Run").
		Str("outcome", outcome.String()).
		Int("downloaded", run.downloaded).
		Int("failed_files", run.failedFiles).
		Msg("sync session finished")

	return record
}

func (o *syncOrchestrator) runStages(ctx context.Context, run *sessionRun) error {
	stages, ok := stagesByMode[run.session.Mode]
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidMode, run.session.Mode)
	}

	for _, stage := range stages {
		if o.cancelled(ctx, run) {
			run.log.Info().Str("func", "syncOrchestrator.runStages").Stringer("stage", stage).Msg("cancellation observed before stage")
			return ErrCancelled
		}
		if stage == models.StageAccountBinding && run.onboarding.Bound {
			continue
		}

		o.enter(run, stage)
		start := o.collab.Clock.Now()
		err := o.runStage(ctx, run, stage)
		o.metrics.ObserveStage(stage.String(), o.collab.Clock.Now().Sub(start), stageError(err))

		if err != nil {
			return err
		}
	}
	return nil
}

func stageError(err error) error {
	if errors.Is(err, errSessionComplete) {
		return nil
	}
	return err
}

func (o *syncOrchestrator) runStage(ctx context.Context, run *sessionRun, stage models.Stage) error {
	switch stage {
	case models.StagePreparing:
		return o.prepare(ctx, run)
	case models.StageConnecting:
		return o.connect(ctx, run)
	case models.StageTimeSync:
		return o.syncTime(ctx, run)
	case models.StageAccountBinding:
		return o.bind(ctx, run)
	case models.StageResourceSync:
		return o.syncResources(ctx, run)
	case models.StageFirmwareCheck:
		return o.checkFirmware(ctx, run)
	case models.StageTelemetryUpload:
		return o.uploadTelemetry(ctx, run)
	case models.StageAccountContentSync:
		return o.syncAccountContent(ctx, run)
	}
	return nil
}

func (o *syncOrchestrator) enter(run *sessionRun, stage models.Stage) {
	run.session.setStage(stage)
	o.collab.Notifier.SetProgressStage(stage)
	run.log.Debug().Str("func", "syncOrchestrator.enter").Stringer("stage", stage).Msg("entering stage")
}

func (o *syncOrchestrator) cancelled(ctx context.Context, run *sessionRun) bool {
	return run.session.CancelRequested() || ctx.Err() != nil
}

// prepare loads the provisioning data and claims the radio from the
// companion peer.
func (o *syncOrchestrator) prepare(ctx context.Context, run *sessionRun) error {
	var err error
	if run.creds, err = o.credentials.ReadCredentials(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrNotProvisioned, err)
	}
	if run.onboarding, err = o.credentials.ReadOnboardingState(ctx); err != nil {
		return fmt.Errorf("read onboarding state: %w", err)
	}
	if run.timezone, err = o.credentials.ReadTimezone(ctx); err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		return fmt.Errorf("read timezone: %w", err)
	}

	if run.onboarding.Bound {
		o.adapter.SetToken(run.onboarding.DeviceToken)
	} else {
		if run.session.Mode != models.SyncModeFull {
			return fmt.Errorf("%w: %w", ErrBinding, ErrNotBound)
		}
		if run.secretKey, err = o.credentials.ReadSecretKey(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrNotProvisioned, err)
		}
	}

	if o.collab.Coexistence.IsPeerConnected() {
		if err = o.collab.Coexistence.RequestPeerRelease(ctx, o.cfg.PeerReleaseTimeout); err != nil {
			if ctx.Err() != nil {
				return ErrCancelled
			}
			run.log.Warn().Err(err).Str("func", "syncOrchestrator.prepare").Msg("peer did not release shared memory, continuing")
		}
	}
	o.collab.Coexistence.NotifyRadioActive(true)
	run.radioClaimed = true
	return nil
}

func (o *syncOrchestrator) connect(ctx context.Context, run *sessionRun) error {
	policy := device.RetryPolicy{Attempts: o.cfg.Retry.Connect, Delay: o.cfg.Retry.Delay}
	if err := o.collab.Connectivity.Connect(ctx, run.creds, policy); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	return nil
}

func (o *syncOrchestrator) syncTime(ctx context.Context, run *sessionRun) error {
	if err := o.collab.TimeSync.StartTimeSync(run.timezone); err != nil {
		return fmt.Errorf("%w: %w", ErrTimeSync, err)
	}
	if err := o.collab.TimeSync.WaitForTimeSync(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrTimeSync, err)
	}
	return nil
}

func (o *syncOrchestrator) syncResources(ctx context.Context, run *sessionRun) error {
	res, err := o.content.syncResources(ctx, run)
	run.addResult(res)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrCancelled) {
		return err
	}
	// resource content is best effort, the session continues
	run.log.Warn().Err(err).Str("func", "syncOrchestrator.syncResources").Msg("resource sync failed, skipping")
	return nil
}

func (o *syncOrchestrator) syncAccountContent(ctx context.Context, run *sessionRun) error {
	res, err := o.content.syncAccount(ctx, run)
	run.addResult(res)
	return err
}

// cleanup runs on every path out of the stage machine, including a
// shutdown that already cancelled ctx.
func (o *syncOrchestrator) cleanup(run *sessionRun) {
	o.enter(run, models.StageCleanup)
	start := o.collab.Clock.Now()

	if err := o.collab.Connectivity.DisconnectAndRelease(); err != nil {
		run.log.Warn().Err(err).Str("func", "syncOrchestrator.cleanup").Msg("failed to release network")
	}
	if run.radioClaimed {
		o.collab.Coexistence.NotifyRadioActive(false)
		run.radioClaimed = false
	}

	o.metrics.ObserveStage(models.StageCleanup.String(), o.collab.Clock.Now().Sub(start), nil)
}
