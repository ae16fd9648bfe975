// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompt is shown in front of every REPL line.
const Prompt = "sublime> "

// Executor runs one REPL line split into arguments and returns what it printed.
type Executor func(ctx context.Context, args []string) (string, error)

type replModel struct {
	ctx     context.Context
	exec    Executor
	input   textinput.Model
	spinner spinner.Model

	history []string
	cursor  int
	// pending holds lines entered while a command was running.
	pending []string

	running  bool
	quitting bool
}

func newREPLModel(ctx context.Context, exec Executor) replModel {
	in := textinput.New()
	in.Prompt = promptStyle.Render(Prompt)
	in.Placeholder = "help"
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle

	return replModel{ctx: ctx, exec: exec, input: in, spinner: s}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Println(helpStyle.Render("Type 'help' for commands, 'exit' or ctrl+d to leave.")),
		textinput.Blink,
	)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit), key.Matches(msg, keys.eof):
			m.quitting = true
			return m, tea.Quit
		}
		if m.running {
			if key.Matches(msg, keys.enter) {
				if line := strings.TrimSpace(m.input.Value()); line != "" {
					m.pending = append(m.pending, line)
				}
				m.input.Reset()
				return m, nil
			}
			break
		}
		switch {
		case key.Matches(msg, keys.enter):
			return m.submit()
		case key.Matches(msg, keys.up):
			m.recall(-1)
			return m, nil
		case key.Matches(msg, keys.down):
			m.recall(1)
			return m, nil
		case key.Matches(msg, keys.clear):
			return m, tea.ClearScreen
		}

	case commandDoneMsg:
		m.running = false
		var cmds []tea.Cmd
		if out := strings.TrimRight(msg.output, "\n"); out != "" {
			cmds = append(cmds, tea.Println(out))
		}
		if msg.err != nil {
			cmds = append(cmds, tea.Println(errorStyle.Render("Error: "+humanizeServerUnavailableError(msg.err))))
		}
		for len(m.pending) > 0 && !m.running && !m.quitting {
			line := m.pending[0]
			m.pending = m.pending[1:]
			next, cmd := m.execute(line)
			m = next.(replModel)
			cmds = append(cmds, cmd)
		}
		return m, tea.Sequence(cmds...)

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	return m.execute(line)
}

func (m replModel) execute(line string) (tea.Model, tea.Cmd) {
	echo := tea.Println(promptStyle.Render(Prompt) + line)
	if line == "" {
		return m, echo
	}

	m.history = append(m.history, line)
	m.cursor = len(m.history)

	switch line {
	case "exit", "quit":
		m.quitting = true
		return m, tea.Sequence(echo, tea.Quit)
	case "clear":
		return m, tea.ClearScreen
	}

	args, err := SplitArgs(line)
	if err != nil {
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render("Error: "+err.Error())))
	}

	m.running = true
	return m, tea.Sequence(echo, tea.Batch(m.spinner.Tick, m.run(args)))
}

func (m replModel) run(args []string) tea.Cmd {
	ctx, exec := m.ctx, m.exec
	return func() tea.Msg {
		out, err := exec(ctx, args)
		return commandDoneMsg{output: out, err: err}
	}
}

func (m *replModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	next := m.cursor + step
	if next < 0 {
		next = 0
	}
	if next >= len(m.history) {
		m.cursor = len(m.history)
		m.input.SetValue("")
		return
	}
	m.cursor = next
	m.input.SetValue(m.history[next])
	m.input.CursorEnd()
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}
	if m.running {
		return m.spinner.View() + helpStyle.Render(" running...") + "\n" + m.input.View()
	}
	return m.input.View()
}

// RunREPL reads command lines from in until exit, ctrl+d or ctx cancellation,
// handing each one to exec. Input that is not a terminal is run as a script,
// one line after the other.
func RunREPL(ctx context.Context, in io.Reader, out io.Writer, exec Executor) error {
	if !isInteractive(in) {
		return runScript(ctx, in, out, exec)
	}

	p := tea.NewProgram(
		newREPLModel(ctx, exec),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func runScript(ctx context.Context, in io.Reader, out io.Writer, exec Executor) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(sc.Text())
		if _, err := fmt.Fprintln(out, Prompt+line); err != nil {
			return err
		}
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "clear":
			continue
		}

		args, err := SplitArgs(line)
		if err != nil {
			fmt.Fprintln(out, "Error: "+err.Error())
			continue
		}

		res, err := exec(ctx, args)
		if res = strings.TrimRight(res, "\n"); res != "" {
			fmt.Fprintln(out, res)
		}
		if err != nil {
			fmt.Fprintln(out, "Error: "+humanizeServerUnavailableError(err))
		}
	}
	return sc.Err()
}
