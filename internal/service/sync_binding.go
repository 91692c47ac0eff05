// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/google/uuid"
)

// bindSignature signs the binding nonce with the provisioned secret key.
func bindSignature(deviceID, nonce, secretKey string) string {
	return utils.HashString(deviceID+":"+nonce, secretKey)
}

// bind performs first-time account binding. Whatever the result, the
// session ends after this stage.
func (o *syncOrchestrator) bind(ctx context.Context, run *sessionRun) error {
	log := run.log.With().Str("func", "syncOrchestrator.bind").Logger()

	nonce := uuid.NewString()
	req := models.BindRequest{
		DeviceID:  o.cfg.DeviceID,
		Nonce:     nonce,
		Signature: bindSignature(o.cfg.DeviceID, nonce, run.secretKey),
		Firmware:  o.cfg.FirmwareVersion,
	}

	var resp models.BindResponse
	err := withRetry(ctx, o.cfg.Retry.Bind, o.cfg.Retry.Delay, func(ctx context.Context) error {
		var err error
		resp, err = o.adapter.Bind(ctx, req)
		return err
	})
	if err != nil {
		if errors.Is(err, adapter.ErrAlreadyBound) {
			return fmt.Errorf("%w: %w: %w", ErrBinding, ErrAlreadyBound, err)
		}
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	boundAt := o.collab.Clock.Now().UTC()
	state := models.OnboardingState{
		Bound:       true,
		DeviceToken: resp.DeviceToken,
		AccountID:   resp.AccountID,
		BoundAt:     &boundAt,
	}
	if err = o.credentials.WriteOnboardingState(ctx, state); err != nil {
		return fmt.Errorf("%w: persist onboarding state: %w", ErrBinding, err)
	}
	run.onboarding = state

	log.Info().Str("account_id", resp.AccountID).Msg("device bound to account")
	return errSessionComplete
}
