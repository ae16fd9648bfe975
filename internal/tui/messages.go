// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type commandDoneMsg struct {
	output string
	err    error
}

type workDoneMsg struct {
	err error
}
