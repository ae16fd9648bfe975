// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/sublime-security/sublime-cli/internal/app"
)

var (
	ErrMissingDetectionInput = errors.New(app.MsgMissingDetectionInput)
	ErrMissingQueryInput     = errors.New(app.MsgMissingQueryInput)
	ErrUnsupportedInput      = errors.New(app.MsgUnsupportedInput)

	ErrDetectionNameRequired    = errors.New(app.MsgDetectionNameRequired)
	ErrAmbiguousDetectionTarget = errors.New(app.MsgAmbiguousDetectionTarget)
	ErrDetectionTargetRequired  = errors.New(app.MsgDetectionTargetRequired)
	ErrDetectionIDRequired      = errors.New(app.MsgDetectionIDRequired)
	ErrNoMatchingDetections     = errors.New(app.MsgNoMatchingDetections)
	ErrMissingSubscribeTarget   = errors.New(app.MsgMissingSubscribeTarget)

	ErrMessageIDRequired = errors.New(app.MsgMessageIDRequired)
	ErrNothingToUpdate   = errors.New(app.MsgNoMessagesToUpdate)

	ErrUserTargetRequired = errors.New(app.MsgUserTargetRequired)
	ErrNoUsersToUpdate    = errors.New(app.MsgNoUsersToUpdate)

	ErrInvalidMockCommand = errors.New(app.MsgInvalidMockCommand)
	ErrEmptyFeedback      = errors.New(app.MsgEmptyFeedback)

	// ErrPermissionDenied is returned when the user declines a privacy
	// notice or a bulk confirmation.
	ErrPermissionDenied = errors.New(app.MsgAborted)

	// ErrJobFailed wraps the message of a failed or unrecognised
	// asynchronous job.
	ErrJobFailed = errors.New("job failed")
)
