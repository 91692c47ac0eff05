// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned for a request body that does not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoActiveSession is returned by the cancel endpoint when no session
	// runs.
	ErrNoActiveSession = errors.New("no active sync session")

	// ErrInvalidLimit is returned for a history limit that is not a number.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrPeerChannelBusy is returned when the shared scratch buffer could not
	// be taken in time. The companion retries the command.
	ErrPeerChannelBusy = errors.New("companion channel busy")

	// ErrCommandTooLarge is returned for a companion command that does not
	// fit into the scratch buffer.
	ErrCommandTooLarge = errors.New("companion command too large")

	// ErrUnknownCommand is returned for a companion command name that is not
	// recognized.
	ErrUnknownCommand = errors.New("unknown companion command")
)
