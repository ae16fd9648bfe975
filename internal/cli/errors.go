// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/sublime-security/sublime-cli/internal/app"
)

var (
	// ErrAPIKeyNotFound is returned when no API key is configured anywhere.
	ErrAPIKeyNotFound = errors.New(app.MsgAPIKeyNotFound)
	// ErrNestedREPL is returned when repl is started from inside a session.
	ErrNestedREPL = errors.New("already in an interactive session")
)
