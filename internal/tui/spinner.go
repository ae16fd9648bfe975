// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sublime-security/sublime-cli/internal/utils"
)

type spinnerModel struct {
	spinner spinner.Model
	label   string
	work    func() error

	done bool
	err  error
}

func newSpinnerModel(label string, work func() error) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle
	return spinnerModel{spinner: s, label: label, work: work}
}

func (m spinnerModel) Init() tea.Cmd {
	work := m.work
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return workDoneMsg{err: work()}
	})
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + helpStyle.Render(m.label)
}

// RunWithSpinner runs work while a spinner labelled label is drawn on w.
// Work runs plainly when w is not a terminal.
func RunWithSpinner(ctx context.Context, w io.Writer, label string, work func(context.Context) error) error {
	if !utils.IsTerminal(w) {
		return work(ctx)
	}

	model := newSpinnerModel(label, func() error { return work(ctx) })
	final, err := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(w),
		tea.WithoutSignalHandler(),
	).Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return final.(spinnerModel).err
}
