// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote is returned by SplitArgs for a line with an open quote.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// ErrAborted is returned by Confirm when the prompt is interrupted.
var ErrAborted = errors.New("aborted")

// ErrNoInput is returned by Confirm when no input stream is available.
var ErrNoInput = errors.New("confirmation needs an interactive input, pass --yes to skip it")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or the Sublime API cannot be reached"
	}

	return err.Error()
}
