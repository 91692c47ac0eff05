// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{db: db, logger: logger}
}

// SaveSession stores a finished session. Saving the same session id twice
// keeps the first record.
func (h *historyRepository) SaveSession(ctx context.Context, r models.SessionRecord) error {
	log := logger.FromContext(ctx)

	_, err := h.db.execRetrying(ctx, saveSession,
		r.SessionID,
		int(r.Mode),
		int(r.Outcome),
		int(r.LastStage),
		r.Error,
		r.Downloaded,
		r.FailedFiles,
		r.FirmwareApplied,
		r.StartedAt.UTC(),
		r.FinishedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveSession").
			Str("session_id", r.SessionID).
			Msg("failed to save session record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LastSessions returns up to limit sessions, most recent first.
func (h *historyRepository) LastSessions(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = noLimit
	}

	rows, err := h.db.QueryContext(ctx, getLastSessions, limit)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.LastSessions").
			Msg("failed to execute query for session history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.SessionRecord
	for rows.Next() {
		var (
			r                    models.SessionRecord
			mode, outcome, stage int
		)
		scanErr := rows.Scan(
			&r.SessionID,
			&mode,
			&outcome,
			&stage,
			&r.Error,
			&r.Downloaded,
			&r.FailedFiles,
			&r.FirmwareApplied,
			&r.StartedAt,
			&r.FinishedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyRepository.LastSessions").
				Msg("failed to scan session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		r.Mode, r.Outcome, r.LastStage = models.SyncMode(mode), models.Outcome(outcome), models.Stage(stage)
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
