// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrInvalidTimestamp is returned by [ParseTimestamp] for unsupported input.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ErrInvalidRouteType is returned by [ParseRouteType] for unknown route types.
var ErrInvalidRouteType = errors.New("invalid route type")
