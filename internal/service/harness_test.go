// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/device"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/mock"
	"github.com/MKhiriev/go-device-sync/internal/transaction"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testRoot     = "/data"
	testToken    = "device-token"
	testFirmware = "1.4.2"
)

var testNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

// fixedClock always returns the same instant.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// recordingNotifier keeps every stage and outcome it was given.
type recordingNotifier struct {
	mu       sync.Mutex
	stages   []models.Stage
	outcomes []models.Outcome
	onStage  func(models.Stage)
}

func (n *recordingNotifier) SetProgressStage(stage models.Stage) {
	n.mu.Lock()
	n.stages = append(n.stages, stage)
	hook := n.onStage
	n.mu.Unlock()
	if hook != nil {
		hook(stage)
	}
}

func (n *recordingNotifier) SetCompletionScreen(outcome models.Outcome) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.outcomes = append(n.outcomes, outcome)
}

func (n *recordingNotifier) Stages() []models.Stage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Stage(nil), n.stages...)
}

// fakeDownloader writes size bytes of filler to <dest>.tmp.
type fakeDownloader struct {
	fs afero.Fs

	mu     sync.Mutex
	paths  []string
	fail   map[string]error
	short  map[string]int64
	onCall func(n int)
}

func (d *fakeDownloader) DownloadEntry(_ context.Context, entry models.ManifestEntry, dest string) (models.DownloadResult, error) {
	d.mu.Lock()
	d.paths = append(d.paths, entry.Path)
	n := len(d.paths)
	err := d.fail[entry.Path]
	size, truncated := d.short[entry.Path]
	hook := d.onCall
	d.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	if err != nil {
		return models.DownloadResult{}, err
	}

	if err := d.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return models.DownloadResult{}, err
	}
	if !truncated {
		size = entry.Size
	}
	data := bytes.Repeat([]byte{'x'}, int(size))
	if err := afero.WriteFile(d.fs, transaction.TempPath(dest), data, 0o644); err != nil {
		return models.DownloadResult{}, err
	}
	return models.DownloadResult{BytesWritten: size, TotalSize: entry.Size, Attempts: 1}, nil
}

func (d *fakeDownloader) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.paths...)
}

// scenario describes the remote side and device state of one session.
type scenario struct {
	bound    bool
	resource models.ResourceManifestDocument
	account  models.AccountManifestDocument
	firmware models.FirmwareInfo
	external bool
	battery  int
	tracking []models.TrackingRecord
}

func defaultScenario() scenario {
	return scenario{
		bound: true,
		resource: models.ResourceManifestDocument{
			Version: "7",
			Files: []models.ResourceFile{
				{Path: "icons/a.png", URL: "https://cdn/a.png", Size: 1000},
				{Path: "icons/b.png", URL: "https://cdn/b.png", Size: 2000},
			},
		},
		account: models.AccountManifestDocument{
			AccountID: "acc-1",
			Audio:     []models.AccountFile{{Name: "song.mp3", URL: "https://cdn/song.mp3", Size: 500}},
			Alarms:    []models.AccountFile{{Name: "wake.mp3", URL: "https://cdn/wake.mp3", Size: 300}},
		},
		firmware: models.FirmwareInfo{Version: testFirmware, URL: "https://cdn/fw.bin", Size: 10},
		external: true,
		battery:  80,
	}
}

type harness struct {
	t    *testing.T
	ctrl *gomock.Controller
	fs   afero.Fs

	cloud    *mock.MockCloudAdapter
	creds    *mock.MockCredentialStore
	tracking *mock.MockTrackingRepository
	conn     *mock.MockConnectivity
	timeSync *mock.MockTimeSync
	coex     *mock.MockCoexistence
	firmware *mock.MockFirmwareUpdater
	power    *mock.MockPowerMonitor
	notifier *recordingNotifier
	dl       *fakeDownloader

	cfg OrchestratorConfig

	connects      atomic.Int32
	disconnects   atomic.Int32
	radio         []bool
	applies       atomic.Int32
	infoUploads   atomic.Int32
	resourceFetch atomic.Int32
	accountFetch  atomic.Int32
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	fs := afero.NewMemMapFs()

	return &harness{
		t:        t,
		ctrl:     ctrl,
		fs:       fs,
		cloud:    mock.NewMockCloudAdapter(ctrl),
		creds:    mock.NewMockCredentialStore(ctrl),
		tracking: mock.NewMockTrackingRepository(ctrl),
		conn:     mock.NewMockConnectivity(ctrl),
		timeSync: mock.NewMockTimeSync(ctrl),
		coex:     mock.NewMockCoexistence(ctrl),
		firmware: mock.NewMockFirmwareUpdater(ctrl),
		power:    mock.NewMockPowerMonitor(ctrl),
		notifier: &recordingNotifier{},
		dl:       &fakeDownloader{fs: fs},
		cfg: OrchestratorConfig{
			DeviceID:           "dev-1",
			FirmwareVersion:    testFirmware,
			RootDir:            testRoot,
			MinBatteryPercent:  30,
			PeerReleaseTimeout: 10 * time.Millisecond,
			Retry: RetryPolicy{
				Bind:      3,
				Telemetry: 2,
				Manifest:  2,
				File:      3,
				Firmware:  4,
				Connect:   2,
				Delay:     time.Millisecond,
			},
		},
	}
}

func resourceInfo(t *testing.T, doc models.ResourceManifestDocument) models.ResourceManifestInfo {
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return models.ResourceManifestInfo{Raw: raw, Document: doc}
}

func accountInfo(t *testing.T, doc models.AccountManifestDocument) models.AccountManifestInfo {
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return models.AccountManifestInfo{Raw: raw, Document: doc}
}

// expect registers permissive expectations for sc. Expectations registered
// before expect take precedence.
func (h *harness) expect(sc scenario) {
	t := h.t
	ctx := gomock.Any()

	h.creds.EXPECT().ReadCredentials(ctx).Return(models.Credentials{SSID: "home", Password: "password1"}, nil).AnyTimes()
	h.creds.EXPECT().ReadTimezone(ctx).Return("Europe/Berlin", nil).AnyTimes()
	h.creds.EXPECT().ReadSecretKey(ctx).Return("secret", nil).AnyTimes()
	if sc.bound {
		h.creds.EXPECT().ReadOnboardingState(ctx).Return(models.OnboardingState{Bound: true, DeviceToken: testToken, AccountID: "acc-1"}, nil).AnyTimes()
	} else {
		h.creds.EXPECT().ReadOnboardingState(ctx).Return(models.OnboardingState{}, nil).AnyTimes()
	}
	h.cloud.EXPECT().SetToken(testToken).AnyTimes()

	h.coex.EXPECT().IsPeerConnected().Return(false).AnyTimes()
	h.coex.EXPECT().NotifyRadioActive(gomock.Any()).Do(func(active bool) { h.radio = append(h.radio, active) }).AnyTimes()

	h.conn.EXPECT().Connect(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.Credentials, device.RetryPolicy) error {
		h.connects.Add(1)
		return nil
	}).AnyTimes()
	h.conn.EXPECT().DisconnectAndRelease().DoAndReturn(func() error {
		h.disconnects.Add(1)
		return nil
	}).AnyTimes()

	h.timeSync.EXPECT().StartTimeSync(gomock.Any()).Return(nil).AnyTimes()
	h.timeSync.EXPECT().WaitForTimeSync(ctx).Return(nil).AnyTimes()

	h.power.EXPECT().ExternalPower().Return(sc.external, nil).AnyTimes()
	h.power.EXPECT().BatteryPercent().Return(sc.battery, nil).AnyTimes()

	h.cloud.EXPECT().FetchResourceManifest(ctx, testFirmware).DoAndReturn(func(context.Context, string) (models.ResourceManifestInfo, error) {
		h.resourceFetch.Add(1)
		return resourceInfo(t, sc.resource), nil
	}).AnyTimes()
	h.cloud.EXPECT().FetchAccountManifest(ctx).DoAndReturn(func(context.Context) (models.AccountManifestInfo, error) {
		h.accountFetch.Add(1)
		return accountInfo(t, sc.account), nil
	}).AnyTimes()
	h.cloud.EXPECT().FetchFirmwareInfo(ctx).Return(sc.firmware, nil).AnyTimes()
	h.firmware.EXPECT().ApplyFirmwareImage(ctx, gomock.Any()).DoAndReturn(func(context.Context, models.FirmwareInfo) error {
		h.applies.Add(1)
		return nil
	}).AnyTimes()

	h.cloud.EXPECT().UploadDeviceInfo(ctx, gomock.Any()).DoAndReturn(func(context.Context, models.DeviceInfo) error {
		h.infoUploads.Add(1)
		return nil
	}).AnyTimes()
	h.tracking.EXPECT().PendingTracking(ctx, trackingBatchSize).Return(sc.tracking, nil).AnyTimes()
}

func (h *harness) orchestrator() SessionRunner {
	return NewSyncOrchestrator(
		h.cfg,
		h.cloud,
		h.creds,
		h.tracking,
		Collaborators{
			Connectivity: h.conn,
			TimeSync:     h.timeSync,
			Notifier:     h.notifier,
			Coexistence:  h.coex,
			Firmware:     h.firmware,
			Power:        h.power,
			Clock:        fixedClock{testNow},
		},
		h.dl,
		h.fs,
		nil,
		logger.Nop(),
	)
}

func (h *harness) session(mode models.SyncMode) *SyncSession {
	return NewSyncSession("session-1", mode, testNow, nil)
}

func (h *harness) run(mode models.SyncMode) models.SessionRecord {
	return h.orchestrator().Run(context.Background(), h.session(mode))
}

func (h *harness) writeFile(rel string, size int) {
	h.t.Helper()
	h.writeBytes(rel, bytes.Repeat([]byte{'x'}, size))
}

func (h *harness) writeBytes(rel string, data []byte) {
	h.t.Helper()
	path := filepath.Join(testRoot, rel)
	require.NoError(h.t, h.fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(h.t, afero.WriteFile(h.fs, path, data, 0o644))
}

func (h *harness) exists(rel string) bool {
	ok, err := afero.Exists(h.fs, filepath.Join(testRoot, rel))
	require.NoError(h.t, err)
	return ok
}

func (h *harness) size(rel string) int64 {
	fi, err := h.fs.Stat(filepath.Join(testRoot, rel))
	require.NoError(h.t, err)
	return fi.Size()
}

func (h *harness) read(rel string) string {
	data, err := afero.ReadFile(h.fs, filepath.Join(testRoot, rel))
	require.NoError(h.t, err)
	return string(data)
}
