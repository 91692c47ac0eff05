// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

const defaultHistoryLimit = 20

type deviceService struct {
	credentials store.CredentialStore
	tracking    store.TrackingRepository
	history     store.HistoryRepository
	validator   validators.Validator
	log         *logger.Logger
}

func NewDeviceService(credentials store.CredentialStore, tracking store.TrackingRepository, history store.HistoryRepository, log *logger.Logger) DeviceService {
	return &deviceService{
		credentials: credentials,
		tracking:    tracking,
		history:     history,
		validator:   validators.NewDeviceValidator(),
		log:         log,
	}
}

// Provision stores new network credentials and the binding secret. The
// onboarding state is left untouched.
func (s *deviceService) Provision(ctx context.Context, p models.Provisioning) error {
	if err := s.validator.Validate(ctx, p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.credentials.WriteProvisioning(ctx, p); err != nil {
		return fmt.Errorf("error saving provisioning: %w", err)
	}
	s.log.Info().Str("func", "deviceService.Provision").Str("ssid", p.SSID).Msg("device provisioned")
	return nil
}

func (s *deviceService) RecordTracking(ctx context.Context, record models.TrackingRecord) (int64, error) {
	if err := s.validator.Validate(ctx, record); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	id, err := s.tracking.RecordTracking(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("error recording tracking event: %w", err)
	}
	return id, nil
}

// History returns the last sessions, newest first. A non-positive limit
// selects the default.
func (s *deviceService) History(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.history.LastSessions(ctx, limit)
}

func (s *deviceService) OnboardingState(ctx context.Context) (models.OnboardingState, error) {
	return s.credentials.ReadOnboardingState(ctx)
}
