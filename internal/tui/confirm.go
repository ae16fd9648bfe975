// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	message string

	answered bool
	answer   bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, keys.yes):
		m.answered, m.answer = true, true
	case key.Matches(k, keys.no), key.Matches(k, keys.enter), key.Matches(k, keys.esc):
		m.answered = true
	case key.Matches(k, keys.quit), key.Matches(k, keys.eof):
		m.aborted = true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m confirmModel) View() string {
	view := m.message + " [y/N]: "
	switch {
	case m.aborted:
		return view + "\n"
	case m.answered && m.answer:
		return view + "y\n"
	case m.answered:
		return view + "N\n"
	}
	return view
}

// Confirm asks a yes/no question on out and reads the answer from in.
// Anything but y or yes counts as no. Input that ends before an answer
// aborts.
//
// A terminal gets a single-key prompt. Other input is read one line at a
// time so later prompts still find their answers.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, message string) (bool, error) {
	if in == nil {
		return false, ErrNoInput
	}
	if !isInteractive(in) {
		return confirmLine(in, out, message)
	}

	p := tea.NewProgram(
		confirmModel{message: message},
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return false, ErrAborted
		}
		return false, err
	}

	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}

func confirmLine(in io.Reader, out io.Writer, message string) (bool, error) {
	if _, err := io.WriteString(out, confirmModel{message: message}.View()); err != nil {
		return false, err
	}

	line, err := readLine(in)
	if err != nil {
		_, _ = io.WriteString(out, "\n")
		return false, ErrAborted
	}

	answer := "N"
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		answer = "y"
	}
	_, err = io.WriteString(out, answer+"\n")
	return answer == "y", err
}

// Confirmer adapts Confirm to the service layer's confirmation hook.
type Confirmer struct {
	In  io.Reader
	Out io.Writer
	// AssumeYes answers every prompt without reading input.
	AssumeYes bool
}

func (c Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.AssumeYes {
		return true, nil
	}
	return Confirm(ctx, c.In, c.Out, prompt)
}
