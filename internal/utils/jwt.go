// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned when a header value is not of the
// form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// DeviceTokenClaims is what the device reads from the token issued by the
// cloud on binding. The signature is verified by the cloud only; the device
// never holds the signing key.
type DeviceTokenClaims struct {
	AccountID string
	ExpiresAt time.Time
}

// ParseDeviceToken reads the claims of a device token without verifying it.
// The subject carries the account id.
func ParseDeviceToken(tokenString string) (DeviceTokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return DeviceTokenClaims{}, fmt.Errorf("error parsing device token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return DeviceTokenClaims{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return DeviceTokenClaims{}, err
	}
	if sub == "" {
		return DeviceTokenClaims{}, errors.New("empty subject error")
	}

	out := DeviceTokenClaims{AccountID: sub}
	exp, err := claims.GetExpirationTime()
	if err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}
