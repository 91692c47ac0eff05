// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/transaction"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/inconshreveable/go-update"
	"github.com/spf13/afero"
)

// ImageDownloader fetches an artifact to <dest>.tmp with resume.
type ImageDownloader interface {
	Download(ctx context.Context, url, dest string, expectedSize int64) (models.DownloadResult, error)
}

// ImageUpdater stages the firmware image next to the synchronized content
// and installs it over the target binary with go-update, which keeps the
// previous binary until the swap succeeded.
type ImageUpdater struct {
	downloader  ImageDownloader
	fs          afero.Fs
	stagingPath string
	targetPath  string
	log         *logger.Logger

	apply         func(io.Reader, update.Options) error
	rollbackError func(error) error
}

// NewImageUpdater stages images at stagingPath (on fs) and installs them at
// targetPath (on the host filesystem). An empty targetPath replaces the
// running executable.
func NewImageUpdater(downloader ImageDownloader, fs afero.Fs, stagingPath, targetPath string, log *logger.Logger) *ImageUpdater {
	return &ImageUpdater{
		downloader:    downloader,
		fs:            fs,
		stagingPath:   stagingPath,
		targetPath:    targetPath,
		log:           log,
		apply:         update.Apply,
		rollbackError: update.RollbackError,
	}
}

func (u *ImageUpdater) ApplyFirmwareImage(ctx context.Context, info models.FirmwareInfo) error {
	log := u.log.With().
		Str("func", "ImageUpdater.ApplyFirmwareImage").
		Str("version", info.Version).
		Logger()

	opts := update.Options{TargetPath: u.targetPath, TargetMode: 0o755}
	if info.SHA256 != "" {
		sum, err := hex.DecodeString(info.SHA256)
		if err != nil {
			return fmt.Errorf("%w: invalid checksum: %w", ErrFirmwareApply, err)
		}
		opts.Checksum = sum
	}

	size := info.Size
	if size <= 0 {
		size = -1
	}
	if _, err := u.downloader.Download(ctx, info.URL, u.stagingPath, size); err != nil {
		return fmt.Errorf("%w: download: %w", ErrFirmwareApply, err)
	}

	staged := transaction.TempPath(u.stagingPath)
	image, err := u.fs.Open(staged)
	if err != nil {
		return fmt.Errorf("%w: open staged image: %w", ErrFirmwareApply, err)
	}
	applyErr := u.apply(image, opts)
	_ = image.Close()

	if applyErr != nil {
		if rollbackErr := u.rollbackError(applyErr); rollbackErr != nil {
			log.Error().Err(rollbackErr).Msg("firmware rollback failed")
			return fmt.Errorf("%w: %w", ErrFirmwareRollback, rollbackErr)
		}
		// the staged image is unusable, the next attempt downloads it again
		if err = u.fs.Remove(staged); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("failed to discard staged image")
		}
		return fmt.Errorf("%w: %w", ErrFirmwareApply, applyErr)
	}

	if err = u.fs.Remove(staged); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to remove staged image")
	}
	log.Info().Str("target", u.targetPath).Msg("firmware image applied")
	return nil
}
