// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)
