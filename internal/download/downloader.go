// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package download fetches one remote artifact to <dest>.tmp with byte-range
// resume, fixed-size chunk streaming and a bounded number of whole-artifact
// attempts.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/scratch"
	"github.com/MKhiriev/go-device-sync/internal/transaction"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/afero"
)

const (
	// ChunkSize is the size of the streaming buffer.
	ChunkSize = 32 * 1024

	defaultAttempts       = 3
	defaultRetryDelay     = 2 * time.Second
	defaultReportInterval = time.Second

	scratchTimeout = 10 * time.Millisecond
	errorExcerpt   = 256
)

// Downloader streams remote artifacts to disk. Transfers are serialized: the
// chunk buffer is owned by the Downloader and reused for every call.
type Downloader struct {
	client *utils.HTTPClient
	fs     afero.Fs

	attempts       int
	delay          time.Duration
	reportInterval time.Duration

	scratch *scratch.Buffer
	metrics metrics.SyncMetrics
	log     *logger.Logger

	mu  sync.Mutex
	buf []byte
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithAttempts sets the whole-artifact attempt budget.
func WithAttempts(n int) Option {
	return func(d *Downloader) {
		if n > 0 {
			d.attempts = n
		}
	}
}

// WithRetryDelay sets the constant delay between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(d *Downloader) { d.delay = delay }
}

// WithReportInterval sets how often throughput is logged.
func WithReportInterval(interval time.Duration) Option {
	return func(d *Downloader) {
		if interval > 0 {
			d.reportInterval = interval
		}
	}
}

// WithScratch shares buf for error body excerpts.
func WithScratch(buf *scratch.Buffer) Option {
	return func(d *Downloader) { d.scratch = buf }
}

func WithMetrics(m metrics.SyncMetrics) Option {
	return func(d *Downloader) {
		if m != nil {
			d.metrics = m
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(d *Downloader) { d.log = l }
}

// New returns a Downloader writing through fs.
func New(client *utils.HTTPClient, fs afero.Fs, opts ...Option) *Downloader {
	d := &Downloader{
		client:         client,
		fs:             fs,
		attempts:       defaultAttempts,
		delay:          defaultRetryDelay,
		reportInterval: defaultReportInterval,
		metrics:        metrics.NoopSyncMetrics{},
		log:            logger.Nop(),
		buf:            make([]byte, ChunkSize),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Attempts returns the configured attempt budget.
func (d *Downloader) Attempts() int { return d.attempts }

// Download fetches url into dest+".tmp". expectedSize < 0 means the size is
// unknown and the stream length is accepted as is.
//
// On success the temp file holds exactly expectedSize bytes and is ready for
// a transaction. On failure the temp file keeps whatever prefix was written,
// so the next call resumes from it.
func (d *Downloader) Download(ctx context.Context, url, dest string, expectedSize int64) (models.DownloadResult, error) {
	return d.download(ctx, url, dest, expectedSize, "artifact")
}

// DownloadEntry fetches a manifest entry into dest+".tmp".
func (d *Downloader) DownloadEntry(ctx context.Context, entry models.ManifestEntry, dest string) (models.DownloadResult, error) {
	return d.download(ctx, entry.URL, dest, entry.Size, string(entry.Category))
}

func (d *Downloader) download(ctx context.Context, url, dest string, expectedSize int64, category string) (models.DownloadResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	log := &logger.Logger{Logger: d.log.With().
		Str("func", "Downloader.Download").
		Str("url", url).
		Str("path", dest).
		Logger()}

	tmp := transaction.TempPath(dest)
	if err := d.fs.MkdirAll(filepath.Dir(tmp), 0o755); err != nil {
		return models.DownloadResult{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	result := models.DownloadResult{TotalSize: expectedSize}
	var written int64

	err := retry.Do(ctx, utils.ConstantBackoff(d.attempts, d.delay), func(ctx context.Context) error {
		result.Attempts++
		n, resumed, err := d.attempt(ctx, url, tmp, expectedSize, log)
		written += n
		result.Resumed = result.Resumed || resumed
		if err == nil {
			return nil
		}

		log.Warn().Err(err).Int("attempt", result.Attempts).Msg("download attempt failed")
		if isRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})

	result.BytesWritten = written
	d.metrics.RecordDownload(category, written, result.Resumed, err)
	if err != nil {
		return result, err
	}

	if expectedSize < 0 {
		if info, statErr := d.fs.Stat(tmp); statErr == nil {
			result.TotalSize = info.Size()
		}
	}
	log.Info().Int64("bytes", written).Int("attempts", result.Attempts).Bool("resumed", result.Resumed).Msg("download complete")
	return result, nil
}

// attempt performs one ranged request. It returns the bytes appended to the
// temp file and whether the transfer resumed from a previous prefix.
func (d *Downloader) attempt(ctx context.Context, url, tmp string, expectedSize int64, log *logger.Logger) (int64, bool, error) {
	var offset int64
	if info, err := d.fs.Stat(tmp); err == nil {
		offset = info.Size()
	}

	if expectedSize >= 0 {
		switch {
		case offset == expectedSize && offset > 0:
			return 0, false, nil
		case offset > expectedSize:
			log.Debug().Int64("offset", offset).Msg("temp file larger than expected, discarding")
			if err := d.discard(tmp); err != nil {
				return 0, false, err
			}
			offset = 0
		}
	}

	req := d.client.R().SetContext(ctx).SetDoNotParseResponse(true)
	if offset > 0 {
		req.SetHeader("Range", "bytes="+strconv.FormatInt(offset, 10)+"-")
	}

	resp, err := req.Get(url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, false, ctxErr
		}
		return 0, false, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	body := resp.RawBody()
	defer body.Close()

	flags := os.O_CREATE | os.O_WRONLY
	resumed := false
	switch status := resp.StatusCode(); {
	case status == http.StatusPartialContent && offset > 0:
		flags |= os.O_APPEND
		resumed = true
	case status == http.StatusOK || status == http.StatusPartialContent:
		// server ignored the range or there was nothing to resume
		flags |= os.O_TRUNC
		offset = 0
	case status == http.StatusRequestedRangeNotSatisfiable:
		if err := d.discard(tmp); err != nil {
			return 0, false, err
		}
		return 0, false, &statusError{code: status, retryable: true}
	default:
		d.logErrorBody(body, status, log)
		return 0, false, &statusError{code: status, retryable: status >= http.StatusInternalServerError || status == http.StatusTooManyRequests}
	}

	f, err := d.fs.OpenFile(tmp, flags, 0o644)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	n, copyErr := d.stream(f, body, offset, log)
	if closeErr := f.Close(); closeErr != nil && copyErr == nil {
		copyErr = fmt.Errorf("%w: %w", ErrWrite, closeErr)
	}
	if copyErr != nil {
		return n, resumed, copyErr
	}

	total := offset + n
	switch {
	case expectedSize < 0 || total == expectedSize:
		return n, resumed, nil
	case total < expectedSize:
		return n, resumed, fmt.Errorf("%w: have %d of %d bytes", ErrIncompleteResumable, total, expectedSize)
	default:
		if err := d.discard(tmp); err != nil {
			return n, resumed, err
		}
		return n, resumed, fmt.Errorf("%w: got %d bytes, expected %d", ErrSizeMismatch, total, expectedSize)
	}
}

// stream copies body to f through the fixed chunk buffer and logs throughput
// every report interval.
func (d *Downloader) stream(f io.Writer, body io.Reader, offset int64, log *logger.Logger) (int64, error) {
	var (
		written    int64
		windowSize int64
		windowFrom = time.Now()
	)

	for {
		n, readErr := body.Read(d.buf)
		if n > 0 {
			if _, err := f.Write(d.buf[:n]); err != nil {
				return written, fmt.Errorf("%w: %w", ErrWrite, err)
			}
			written += int64(n)
			windowSize += int64(n)
		}

		if elapsed := time.Since(windowFrom); elapsed >= d.reportInterval {
			log.Debug().
				Int64("bytes", offset+written).
				Int64("bps", int64(float64(windowSize)/elapsed.Seconds())).
				Msg("download progress")
			windowSize, windowFrom = 0, time.Now()
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return written, nil
			}
			// the prefix stays on disk for the next attempt
			return written, fmt.Errorf("%w: %w", ErrIncompleteResumable, readErr)
		}
	}
}

func (d *Downloader) discard(tmp string) error {
	if err := d.fs.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// logErrorBody logs the head of an error response through the shared
// scratch buffer. It is skipped when the buffer is busy.
func (d *Downloader) logErrorBody(body io.Reader, status int, log *logger.Logger) {
	if d.scratch == nil {
		log.Warn().Int("status", status).Msg("unexpected download status")
		return
	}

	buf, release, ok := d.scratch.TryAcquire(scratchTimeout)
	if !ok {
		log.Warn().Int("status", status).Msg("unexpected download status")
		return
	}
	defer release()

	limit := min(len(buf), errorExcerpt)
	n, _ := io.ReadFull(body, buf[:limit])
	log.Warn().Int("status", status).Bytes("body", buf[:n]).Msg("unexpected download status")
}
