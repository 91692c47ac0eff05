// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

type trackingRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTrackingRepository(db *DB, logger *logger.Logger) TrackingRepository {
	return &trackingRepository{db: db, logger: logger}
}

// RecordTracking queues record and returns its id. A zero RecordedAt is
// replaced by the current time.
func (t *trackingRepository) RecordTracking(ctx context.Context, record models.TrackingRecord) (int64, error) {
	log := logger.FromContext(ctx)

	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}

	res, err := t.db.execRetrying(ctx, insertTracking, record.Kind, record.Payload, record.RecordedAt)
	if err != nil {
		log.Err(err).
			Str("func", "trackingRepository.RecordTracking").
			Str("kind", record.Kind).
			Msg("failed to insert tracking record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return id, nil
}

// PendingTracking returns up to limit records that were not uploaded yet,
// oldest first.
func (t *trackingRepository) PendingTracking(ctx context.Context, limit int) ([]models.TrackingRecord, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = noLimit
	}

	rows, err := t.db.QueryContext(ctx, getPendingTracking, limit)
	if err != nil {
		log.Err(err).
			Str("func", "trackingRepository.PendingTracking").
			Msg("failed to execute query for pending tracking records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.TrackingRecord
	for rows.Next() {
		var r models.TrackingRecord
		if err = rows.Scan(&r.ID, &r.Kind, &r.Payload, &r.RecordedAt); err != nil {
			log.Err(err).
				Str("func", "trackingRepository.PendingTracking").
				Msg("failed to scan tracking row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// MarkTrackingUploaded stamps ids as uploaded in one transaction.
func (t *trackingRepository) MarkTrackingUploaded(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx).With().Str("func", "trackingRepository.MarkTrackingUploaded").Logger()

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, markTrackingUploaded)
	if err != nil {
		log.Err(err).Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, id := range ids {
		if _, err = stmt.ExecContext(ctx, id); err != nil {
			log.Err(err).Int64("id", id).Msg("failed to mark tracking record uploaded")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
