// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/manifest"
	"github.com/MKhiriev/go-device-sync/internal/transaction"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/spf13/afero"
)

// Layout of the content tree below the root directory.
const (
	ResourceManifestFile = "resource.json"
	AccountManifestFile  = "account_file.json"
	ResourceVersionFile  = "resource.version"
	ResourceDir          = "resources"
	AccountDir           = "account"
)

var emptyManifest = []byte("{}")

// contentDomain describes one manifest-driven content tree.
type contentDomain struct {
	name         string
	manifestPath string
	contentRoot  string
	parse        manifest.Parser
	differ       *manifest.Differencer
	// releaseOnlyIfComplete keeps the previous manifest until every
	// download of the plan succeeded.
	releaseOnlyIfComplete bool
}

type contentResult struct {
	Planned    int
	Downloaded int
	Failed     int
}

// contentSyncer drives RESOURCE_SYNC and ACCOUNT_CONTENT_SYNC: fetch the
// manifest, swap it in keeping the previous one as backup, diff, and fetch
// every changed file through its own transaction in manifest order.
type contentSyncer struct {
	fs         afero.Fs
	store      *manifest.Store
	adapter    adapter.CloudAdapter
	downloader ContentDownloader
	retry      RetryPolicy

	firmwareVersion string
	markerPath      string
	resources       contentDomain
	account         contentDomain
}

func newContentSyncer(fs afero.Fs, root, firmwareVersion string, cloud adapter.CloudAdapter, downloader ContentDownloader, retry RetryPolicy) *contentSyncer {
	resourceRoot := filepath.Join(root, ResourceDir)
	accountRoot := filepath.Join(root, AccountDir)

	return &contentSyncer{
		fs:         fs,
		store:      manifest.NewStore(fs),
		adapter:    cloud,
		downloader: downloader,
		retry:      retry,

		firmwareVersion: firmwareVersion,
		markerPath:      filepath.Join(root, ResourceVersionFile),
		resources: contentDomain{
			name:                  "resource",
			manifestPath:          filepath.Join(root, ResourceManifestFile),
			contentRoot:           resourceRoot,
			parse:                 manifest.ParseResourceManifest,
			differ:                manifest.NewDifferencer(manifest.SizeClassifier{}, manifest.NewFileValidator(fs, resourceRoot)),
			releaseOnlyIfComplete: true,
		},
		account: contentDomain{
			name:         "account",
			manifestPath: filepath.Join(root, AccountManifestFile),
			contentRoot:  accountRoot,
			parse:        manifest.ParseAccountManifest,
			differ:       manifest.NewDifferencer(manifest.SizeClassifier{}, manifest.NewFileValidator(fs, accountRoot)),
		},
	}
}

// resourceVersion returns the version of the last fully synced resources.
func (c *contentSyncer) resourceVersion() string {
	return c.store.ReadMarker(c.markerPath)
}

func (c *contentSyncer) syncResources(ctx context.Context, run *sessionRun) (contentResult, error) {
	var info models.ResourceManifestInfo
	err := withRetry(ctx, c.retry.Manifest, c.retry.Delay, func(ctx context.Context) error {
		var err error
		info, err = c.adapter.FetchResourceManifest(ctx, c.firmwareVersion)
		return err
	})
	if err != nil {
		return contentResult{}, c.fetchError(ctx, err)
	}

	remote, err := manifest.ResourceManifest(info.Document)
	if err != nil {
		return contentResult{}, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}

	d := c.resources
	if remote.Version != "" && remote.Version == c.resourceVersion() && !c.store.HasPrevious(d.manifestPath) {
		if local, err := c.store.Load(d.manifestPath, d.parse); err == nil {
			run.log.Debug().Str("func", "contentSyncer.syncResources").Str("version", remote.Version).Msg("resources at remote version, validating local files")
			return c.apply(ctx, run, d, local, local)
		}
	}

	res, err := c.reconcile(ctx, run, d, info.Raw, remote)
	if err != nil || res.Failed > 0 {
		return res, err
	}

	if remote.Version != "" {
		if err = c.store.WriteMarker(c.markerPath, remote.Version); err != nil {
			return res, fmt.Errorf("%w: version marker: %w", ErrTransaction, err)
		}
	}
	return res, nil
}

func (c *contentSyncer) syncAccount(ctx context.Context, run *sessionRun) (contentResult, error) {
	var info models.AccountManifestInfo
	err := withRetry(ctx, c.retry.Manifest, c.retry.Delay, func(ctx context.Context) error {
		var err error
		info, err = c.adapter.FetchAccountManifest(ctx)
		return err
	})
	if err != nil {
		return contentResult{}, c.fetchError(ctx, err)
	}

	remote, err := manifest.AccountManifest(info.Document)
	if err != nil {
		return contentResult{}, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}

	return c.reconcile(ctx, run, c.account, info.Raw, remote)
}

func (c *contentSyncer) fetchError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrCancelled
	}
	if errors.Is(err, adapter.ErrDecodeResponse) {
		return fmt.Errorf("%w: %w", ErrManifestParse, err)
	}
	return fmt.Errorf("%w: %w", ErrManifestFetch, err)
}

// reconcile persists raw as the current manifest of d, diffs it against the
// previous one and fetches the plan.
func (c *contentSyncer) reconcile(ctx context.Context, run *sessionRun, d contentDomain, raw []byte, current models.Manifest) (contentResult, error) {
	log := &logger.Logger{Logger: run.log.With().Str("func", "contentSyncer.reconcile").Str("domain", d.name).Logger()}

	if restored, err := transaction.Recover(c.fs, d.manifestPath); err != nil {
		log.Warn().Err(err).Msg("cannot recover manifest from backup")
	} else if restored {
		log.Info().Msg("manifest restored from backup")
	}

	pending, hasPending := c.store.ReadPrevious(d.manifestPath)

	if err := c.store.WriteTemp(d.manifestPath, raw); err != nil {
		return contentResult{}, fmt.Errorf("%w: %w", ErrTransaction, err)
	}
	tx := transaction.New(c.fs, d.manifestPath, transaction.WithKeepBackup(), transaction.WithLogger(log))
	if err := tx.Commit(); err != nil {
		return contentResult{}, fmt.Errorf("%w: manifest: %w", ErrTransaction, err)
	}

	// an unconsumed previous manifest stays the diff base until released
	if hasPending {
		if err := c.store.RetainPrevious(d.manifestPath, pending); err != nil {
			return contentResult{}, fmt.Errorf("%w: %w", ErrTransaction, err)
		}
		log.Info().Msg("diffing against retained previous manifest")
	}

	previous, err := c.store.LoadPrevious(d.manifestPath, d.parse)
	if err != nil {
		return contentResult{}, fmt.Errorf("load previous manifest: %w", err)
	}

	res, err := c.apply(ctx, run, d, current, previous)
	release := err == nil
	if d.releaseOnlyIfComplete {
		release = release && res.Failed == 0
	}
	switch {
	case release:
		if relErr := transaction.ReleaseBackup(c.fs, d.manifestPath); relErr != nil {
			log.Warn().Err(relErr).Msg("cannot release previous manifest")
		}
	case !tx.HadOriginal():
		// first sync of d: the empty manifest is the diff base of the retry
		if retErr := c.store.RetainPrevious(d.manifestPath, emptyManifest); retErr != nil {
			log.Warn().Err(retErr).Msg("cannot retain empty previous manifest")
		}
	}
	return res, err
}

// apply diffs current against previous and fetches every planned file.
// Cancellation is checked before each file; a failed optional file is
// skipped, a failed required file fails the domain once the plan is done.
func (c *contentSyncer) apply(ctx context.Context, run *sessionRun, d contentDomain, current, previous models.Manifest) (contentResult, error) {
	log := &logger.Logger{Logger: run.log.With().Str("func", "contentSyncer.apply").Str("domain", d.name).Logger()}

	plan, err := d.differ.Diff(ctx, current, previous)
	if err != nil {
		if ctx.Err() != nil {
			return contentResult{}, ErrCancelled
		}
		return contentResult{}, err
	}

	downloads := plan.Downloads()
	res := contentResult{Planned: len(downloads)}
	log.Info().
		Int("entries", current.Len()).
		Int("new", plan.Count(models.New)).
		Int("modified", plan.Count(models.Modified)).
		Int("downloads", len(downloads)).
		Msg("sync plan built")

	var requiredErr error
	for _, item := range downloads {
		if run.session.CancelRequested() || ctx.Err() != nil {
			log.Info().Int("done", res.Downloaded).Msg("cancellation observed in content loop")
			return res, ErrCancelled
		}

		if err := c.fetch(ctx, d, item, log); err != nil {
			res.Failed++
			if ctx.Err() != nil {
				return res, ErrCancelled
			}
			if item.Entry.Required {
				requiredErr = errors.Join(requiredErr, err)
			}
			continue
		}
		res.Downloaded++
	}

	if requiredErr != nil {
		return res, fmt.Errorf("%w: %w", ErrRequiredContent, requiredErr)
	}
	return res, nil
}

// fetch downloads one entry and swaps it into place.
func (c *contentSyncer) fetch(ctx context.Context, d contentDomain, item models.PlanItem, log *logger.Logger) error {
	dest := filepath.Join(d.contentRoot, filepath.FromSlash(item.Entry.Path))
	entryLog := &logger.Logger{Logger: log.With().Str("path", item.Entry.Path).Str("reason", item.Reason).Logger()}

	if _, err := c.downloader.DownloadEntry(ctx, item.Entry, dest); err != nil {
		entryLog.Warn().Err(err).Msg("download failed, keeping local content")
		return fmt.Errorf("%w: %s: %w", ErrDownload, item.Entry.Path, err)
	}

	tx := transaction.New(c.fs, dest, transaction.WithExpectedSize(item.Entry.Size), transaction.WithLogger(entryLog))
	if err := tx.Commit(); err != nil {
		if errors.Is(err, transaction.ErrSizeMismatch) {
			if discardErr := tx.Discard(); discardErr != nil {
				entryLog.Warn().Err(discardErr).Msg("cannot discard temp file")
			}
		}
		entryLog.Warn().Err(err).Stringer("state", tx.State()).Msg("swap failed, keeping local content")
		return fmt.Errorf("%w: %s: %w", ErrTransaction, item.Entry.Path, err)
	}

	entryLog.Debug().Bool("had_original", tx.HadOriginal()).Msg("file updated")
	return nil
}
