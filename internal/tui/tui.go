// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the interactive terminal pieces of the CLI: the REPL,
// the progress spinner and the yes/no confirmation prompt.
package tui
