// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
)

// Storages groups all device-side repositories into a single value that can
// be passed around the service layer. All repositories share one sqlite
// connection.
type Storages struct {
	Credentials CredentialStore
	Tracking    TrackingRepository
	History     HistoryRepository

	db *DB
}

// NewStorages initialises the device storage layer. It performs the following
// steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Credentials: NewSettingsRepository(db, logger),
		Tracking:    NewTrackingRepository(db, logger),
		History:     NewHistoryRepository(db, logger),
		db:          db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
