// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("device unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrAlreadyBound is returned by Bind when the cloud reports the device
	// as bound to another account.
	ErrAlreadyBound = errors.New("device already bound to another account")

	ErrDecodeResponse = errors.New("error decoding response")
	ErrRequest        = errors.New("request failed")
)
