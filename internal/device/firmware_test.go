// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/transaction"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/inconshreveable/go-update"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stagingPath = "/data/firmware/image.bin"

// stubDownloader writes image to <dest>.tmp.
type stubDownloader struct {
	fs    afero.Fs
	image []byte
	err   error
	calls int
}

func (s *stubDownloader) Download(_ context.Context, _ string, dest string, _ int64) (models.DownloadResult, error) {
	s.calls++
	if s.err != nil {
		return models.DownloadResult{}, s.err
	}
	if err := afero.WriteFile(s.fs, transaction.TempPath(dest), s.image, 0o644); err != nil {
		return models.DownloadResult{}, err
	}
	return models.DownloadResult{BytesWritten: int64(len(s.image)), TotalSize: int64(len(s.image)), Attempts: 1}, nil
}

func checksum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func newTarget(t *testing.T) string {
	t.Helper()
	target := filepath.Join(t.TempDir(), "syncd")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0o755))
	return target
}

func TestApplyFirmwareImage_Success(t *testing.T) {
	fs := afero.NewMemMapFs()
	image := []byte("firmware 2.1.0")
	dl := &stubDownloader{fs: fs, image: image}
	target := newTarget(t)

	u := NewImageUpdater(dl, fs, stagingPath, target, logger.Nop())
	err := u.ApplyFirmwareImage(context.Background(), models.FirmwareInfo{
		Version: "2.1.0",
		URL:     "https://cdn/fw.bin",
		Size:    int64(len(image)),
		SHA256:  checksum(image),
	})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, image, got)

	exists, _ := afero.Exists(fs, transaction.TempPath(stagingPath))
	assert.False(t, exists)
}

func TestApplyFirmwareImage_ChecksumMismatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	dl := &stubDownloader{fs: fs, image: []byte("corrupted")}
	target := newTarget(t)

	u := NewImageUpdater(dl, fs, stagingPath, target, logger.Nop())
	err := u.ApplyFirmwareImage(context.Background(), models.FirmwareInfo{
		Version: "2.1.0",
		SHA256:  checksum([]byte("firmware 2.1.0")),
	})
	assert.ErrorIs(t, err, ErrFirmwareApply)
	assert.NotErrorIs(t, err, ErrFirmwareRollback)

	got, _ := os.ReadFile(target)
	assert.Equal(t, []byte("old build"), got)

	exists, _ := afero.Exists(fs, transaction.TempPath(stagingPath))
	assert.False(t, exists, "unusable image must be discarded")
}

func TestApplyFirmwareImage_InvalidChecksum(t *testing.T) {
	fs := afero.NewMemMapFs()
	dl := &stubDownloader{fs: fs}

	u := NewImageUpdater(dl, fs, stagingPath, newTarget(t), logger.Nop())
	err := u.ApplyFirmwareImage(context.Background(), models.FirmwareInfo{SHA256: "zz"})
	assert.ErrorIs(t, err, ErrFirmwareApply)
	assert.Zero(t, dl.calls)
}

func TestApplyFirmwareImage_DownloadError(t *testing.T) {
	fs := afero.NewMemMapFs()
	dl := &stubDownloader{fs: fs, err: errors.New("connection reset")}

	u := NewImageUpdater(dl, fs, stagingPath, newTarget(t), logger.Nop())
	err := u.ApplyFirmwareImage(context.Background(), models.FirmwareInfo{Version: "2.1.0"})
	assert.ErrorIs(t, err, ErrFirmwareApply)
	assert.ErrorContains(t, err, "connection reset")
}

func TestApplyFirmwareImage_RollbackFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	dl := &stubDownloader{fs: fs, image: []byte("img")}

	u := NewImageUpdater(dl, fs, stagingPath, newTarget(t), logger.Nop())
	swapErr := errors.New("swap failed")
	restoreErr := errors.New("restore failed")
	u.apply = func(r io.Reader, _ update.Options) error {
		_, _ = io.ReadAll(r)
		return swapErr
	}
	u.rollbackError = func(err error) error {
		if errors.Is(err, swapErr) {
			return restoreErr
		}
		return nil
	}

	err := u.ApplyFirmwareImage(context.Background(), models.FirmwareInfo{Version: "2.1.0"})
	assert.ErrorIs(t, err, ErrFirmwareRollback)
	assert.ErrorIs(t, err, restoreErr)
}
