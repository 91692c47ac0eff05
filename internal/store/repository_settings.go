// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

type setting struct {
	key   string
	value string
}

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository returns a [CredentialStore] backed by the settings
// key/value table.
func NewSettingsRepository(db *DB, logger *logger.Logger) CredentialStore {
	return &settingsRepository{db: db, logger: logger}
}

func (s *settingsRepository) ReadCredentials(ctx context.Context) (models.Credentials, error) {
	ssid, err := s.get(ctx, keyWifiSSID)
	if err != nil {
		return models.Credentials{}, notProvisioned(err)
	}

	password, err := s.get(ctx, keyWifiPassword)
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		return models.Credentials{}, err
	}

	return models.Credentials{SSID: ssid, Password: password}, nil
}

func (s *settingsRepository) ReadSecretKey(ctx context.Context) (string, error) {
	key, err := s.get(ctx, keySecretKey)
	if err != nil {
		return "", notProvisioned(err)
	}
	return key, nil
}

func (s *settingsRepository) ReadTimezone(ctx context.Context) (string, error) {
	return s.get(ctx, keyTimezone)
}

func (s *settingsRepository) ReadOnboardingState(ctx context.Context) (models.OnboardingState, error) {
	var state models.OnboardingState

	bound, err := s.get(ctx, keyBound)
	switch {
	case errors.Is(err, ErrSettingNotFound):
		return state, nil
	case err != nil:
		return state, err
	}
	state.Bound = bound == boolTrue

	if state.DeviceToken, err = s.optional(ctx, keyDeviceToken); err != nil {
		return state, err
	}
	if state.AccountID, err = s.optional(ctx, keyAccountID); err != nil {
		return state, err
	}

	boundAt, err := s.optional(ctx, keyBoundAt)
	if err != nil {
		return state, err
	}
	if boundAt != "" {
		t, parseErr := time.Parse(boundAtTimeLayout, boundAt)
		if parseErr != nil {
			return state, fmt.Errorf("%w: bound_at: %w", ErrScanningRow, parseErr)
		}
		state.BoundAt = &t
	}

	return state, nil
}

func (s *settingsRepository) WriteOnboardingState(ctx context.Context, state models.OnboardingState) error {
	bound := boolFalse
	if state.Bound {
		bound = boolTrue
	}

	values := []setting{
		{keyBound, bound},
		{keyDeviceToken, state.DeviceToken},
		{keyAccountID, state.AccountID},
	}
	var remove []string
	if state.BoundAt != nil {
		values = append(values, setting{keyBoundAt, state.BoundAt.UTC().Format(boundAtTimeLayout)})
	} else {
		remove = append(remove, keyBoundAt)
	}

	return s.putAll(ctx, "settingsRepository.WriteOnboardingState", values, remove)
}

func (s *settingsRepository) WriteProvisioning(ctx context.Context, p models.Provisioning) error {
	if strings.TrimSpace(p.SSID) == "" || strings.TrimSpace(p.SecretKey) == "" {
		return fmt.Errorf("%w: ssid and secret key are required", ErrInvalidProvisioning)
	}

	values := []setting{
		{keyWifiSSID, p.SSID},
		{keyWifiPassword, p.Password},
		{keySecretKey, p.SecretKey},
	}
	var remove []string
	if p.Timezone != "" {
		values = append(values, setting{keyTimezone, p.Timezone})
	} else {
		remove = append(remove, keyTimezone)
	}

	return s.putAll(ctx, "settingsRepository.WriteProvisioning", values, remove)
}

func (s *settingsRepository) get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := s.db.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.get").
			Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *settingsRepository) optional(ctx context.Context, key string) (string, error) {
	value, err := s.get(ctx, key)
	if errors.Is(err, ErrSettingNotFound) {
		return "", nil
	}
	return value, err
}

// putAll upserts values and deletes the remove keys in one transaction.
func (s *settingsRepository) putAll(ctx context.Context, funcName string, values []setting, remove []string) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, v := range values {
		if _, err = tx.ExecContext(ctx, upsertSetting, v.key, v.value); err != nil {
			log.Err(err).Str("func", funcName).Str("key", v.key).Msg("failed to write setting")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	for _, key := range remove {
		if _, err = tx.ExecContext(ctx, deleteSetting, key); err != nil {
			log.Err(err).Str("func", funcName).Str("key", key).Msg("failed to delete setting")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func notProvisioned(err error) error {
	if errors.Is(err, ErrSettingNotFound) {
		return fmt.Errorf("%w: %w", ErrNotProvisioned, err)
	}
	return err
}
