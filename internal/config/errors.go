// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation and persistence errors returned by this package.
var (
	// ErrInvalidAPIConfigs indicates an unusable endpoint or timeout.
	ErrInvalidAPIConfigs = errors.New("invalid API configuration")
	// ErrNoOptions is returned by SaveSettings when nothing would change.
	ErrNoOptions = errors.New(`no options provided. Try "sublime setup -h" for help`)
	// ErrInvalidSaveDir indicates that the requested save directory does
	// not exist or is not a directory.
	ErrInvalidSaveDir = errors.New("save directory is not a valid directory")
	// ErrNoHomeDir is returned when the default settings path cannot be
	// derived.
	ErrNoHomeDir = errors.New("cannot determine home directory")
)
