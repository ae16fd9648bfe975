// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr error
	}{
		{name: "plain words", line: "get detections -s phish", want: []string{"get", "detections", "-s", "phish"}},
		{name: "extra whitespace", line: "  get\t me  ", want: []string{"get", "me"}},
		{name: "double quotes", line: `analyze -r "type.inbound and sender.email.domain.root_domain == 'x.com'"`, want: []string{"analyze", "-r", "type.inbound and sender.email.domain.root_domain == 'x.com'"}},
		{name: "single quotes keep backslash", line: `feedback 'a\b'`, want: []string{"feedback", `a\b`}},
		{name: "escaped space", line: `analyze -i my\ mail.eml`, want: []string{"analyze", "-i", "my mail.eml"}},
		{name: "escaped quote in double quotes", line: `feedback "say \"hi\""`, want: []string{"feedback", `say "hi"`}},
		{name: "empty quoted arg", line: `feedback ""`, want: []string{"feedback", ""}},
		{name: "adjacent quoting", line: `a"b c"'d'`, want: []string{"ab cd"}},
		{name: "empty line", line: "   ", want: nil},
		{name: "unterminated", line: `feedback "oops`, wantErr: ErrUnterminatedQuote},
		{name: "trailing backslash", line: `feedback oops\`, wantErr: ErrUnterminatedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitArgs(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func typeLine(m tea.Model, line string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	return m
}

func enter(m tea.Model) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestREPLModel_SubmitRunsExecutor(t *testing.T) {
	var gotArgs []string
	exec := func(_ context.Context, args []string) (string, error) {
		gotArgs = args
		return "done\n", nil
	}

	var m tea.Model = newREPLModel(context.Background(), exec)
	m = typeLine(m, `get detections -s "auth fail"`)
	m, cmd := enter(m)
	require.NotNil(t, cmd)

	rm := m.(replModel)
	assert.True(t, rm.running)
	assert.Equal(t, []string{`get detections -s "auth fail"`}, rm.history)
	assert.Empty(t, rm.input.Value())

	msg := rm.run([]string{"get", "detections", "-s", "auth fail"})()
	assert.Equal(t, []string{"get", "detections", "-s", "auth fail"}, gotArgs)
	assert.Equal(t, commandDoneMsg{output: "done\n"}, msg)

	m, cmd = m.Update(msg)
	assert.False(t, m.(replModel).running)
	assert.NotNil(t, cmd)
}

func TestREPLModel_QueuesLinesWhileRunning(t *testing.T) {
	var ran [][]string
	exec := func(_ context.Context, args []string) (string, error) {
		ran = append(ran, args)
		return "", nil
	}

	m := newREPLModel(context.Background(), exec)
	m.running = true

	var next tea.Model = m
	next = typeLine(next, "get me")
	next, cmd := enter(next)
	assert.Nil(t, cmd)
	rm := next.(replModel)
	assert.Empty(t, rm.input.Value())
	assert.Equal(t, []string{"get me"}, rm.pending)

	next, cmd = next.Update(commandDoneMsg{})
	require.NotNil(t, cmd)
	rm = next.(replModel)
	assert.True(t, rm.running)
	assert.Empty(t, rm.pending)
	assert.Equal(t, []string{"get me"}, rm.history)

	msg := rm.run([]string{"get", "me"})()
	assert.Equal(t, commandDoneMsg{}, msg)
	assert.Equal(t, [][]string{{"get", "me"}}, ran)
}

func TestREPLModel_QueuedExitQuits(t *testing.T) {
	m := newREPLModel(context.Background(), nil)
	m.running = true
	m.pending = []string{"clear", "exit", "get me"}

	next, cmd := m.Update(commandDoneMsg{})
	require.NotNil(t, cmd)
	rm := next.(replModel)
	assert.True(t, rm.quitting)
	assert.False(t, rm.running)
	assert.Equal(t, []string{"get me"}, rm.pending)
}

func TestREPLModel_ExitCommands(t *testing.T) {
	for _, line := range []string{"exit", "quit"} {
		t.Run(line, func(t *testing.T) {
			var m tea.Model = newREPLModel(context.Background(), nil)
			m = typeLine(m, line)
			m, cmd := enter(m)
			require.NotNil(t, cmd)
			assert.True(t, m.(replModel).quitting)
			assert.Empty(t, m.View())
		})
	}

	t.Run("ctrl+d", func(t *testing.T) {
		m, _ := newREPLModel(context.Background(), nil).Update(tea.KeyMsg{Type: tea.KeyCtrlD})
		assert.True(t, m.(replModel).quitting)
	})
}

func TestREPLModel_EmptyLineDoesNotRun(t *testing.T) {
	var m tea.Model = newREPLModel(context.Background(), nil)
	m, _ = enter(m)
	rm := m.(replModel)
	assert.False(t, rm.running)
	assert.Empty(t, rm.history)
}

func TestREPLModel_BadQuotingIsNotExecuted(t *testing.T) {
	called := false
	exec := func(context.Context, []string) (string, error) {
		called = true
		return "", nil
	}

	var m tea.Model = newREPLModel(context.Background(), exec)
	m = typeLine(m, `feedback "open`)
	m, _ = enter(m)
	assert.False(t, m.(replModel).running)
	assert.False(t, called)
}

func TestREPLModel_HistoryRecall(t *testing.T) {
	m := newREPLModel(context.Background(), nil)
	m.history = []string{"get me", "get org"}
	m.cursor = len(m.history)

	m.recall(-1)
	assert.Equal(t, "get org", m.input.Value())
	m.recall(-1)
	assert.Equal(t, "get me", m.input.Value())
	m.recall(-1)
	assert.Equal(t, "get me", m.input.Value())
	m.recall(1)
	assert.Equal(t, "get org", m.input.Value())
	m.recall(1)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 2, m.cursor)
}

func TestRunREPL_RunsPipedLinesUntilExit(t *testing.T) {
	var lines [][]string
	exec := func(_ context.Context, args []string) (string, error) {
		lines = append(lines, args)
		if args[0] == "get" {
			return "", errors.New("bad request")
		}
		return "ok\n", nil
	}

	in := strings.NewReader("version\n\nget me\nfeedback \"open\nexit\nget org\n")
	var out bytes.Buffer
	err := RunREPL(context.Background(), in, &out, exec)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"version"}, {"get", "me"}}, lines)
	assert.Equal(t, Prompt+"version\nok\n"+
		Prompt+"\n"+
		Prompt+"get me\nError: bad request\n"+
		Prompt+"feedback \"open\nError: unterminated quote\n"+
		Prompt+"exit\n", out.String())
}

func TestRunREPL_EndOfInputStops(t *testing.T) {
	calls := 0
	exec := func(context.Context, []string) (string, error) {
		calls++
		return "", nil
	}

	err := RunREPL(context.Background(), strings.NewReader("version"), &bytes.Buffer{}, exec)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name        string
		key         tea.KeyMsg
		wantAnswer  bool
		wantAborted bool
		wantView    string
	}{
		{name: "yes", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, wantAnswer: true, wantView: "Proceed? [y/N]: y\n"},
		{name: "upper yes", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, wantAnswer: true, wantView: "Proceed? [y/N]: y\n"},
		{name: "no", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, wantView: "Proceed? [y/N]: N\n"},
		{name: "enter defaults to no", key: tea.KeyMsg{Type: tea.KeyEnter}, wantView: "Proceed? [y/N]: N\n"},
		{name: "ctrl+c aborts", key: tea.KeyMsg{Type: tea.KeyCtrlC}, wantAborted: true, wantView: "Proceed? [y/N]: \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := confirmModel{message: "Proceed?"}.Update(tt.key)
			require.NotNil(t, cmd)
			cm := m.(confirmModel)
			assert.Equal(t, tt.wantAnswer, cm.answer)
			assert.Equal(t, tt.wantAborted, cm.aborted)
			assert.Equal(t, tt.wantView, cm.View())
		})
	}

	t.Run("other keys are ignored", func(t *testing.T) {
		m, cmd := confirmModel{message: "Proceed?"}.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
		assert.Nil(t, cmd)
		assert.Equal(t, "Proceed? [y/N]: ", m.View())
	})
}

func TestConfirm_ReadsAnswer(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantOut string
	}{
		{in: "y", want: true, wantOut: "Update all 3 messages? [y/N]: y\n"},
		{in: "y\n", want: true, wantOut: "Update all 3 messages? [y/N]: y\n"},
		{in: "Y\r\n", want: true, wantOut: "Update all 3 messages? [y/N]: y\n"},
		{in: " yes \n", want: true, wantOut: "Update all 3 messages? [y/N]: y\n"},
		{in: "n\n", wantOut: "Update all 3 messages? [y/N]: N\n"},
		{in: "\n", wantOut: "Update all 3 messages? [y/N]: N\n"},
		{in: "yep\n", wantOut: "Update all 3 messages? [y/N]: N\n"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var out bytes.Buffer
			ok, err := Confirm(context.Background(), strings.NewReader(tt.in), &out, "Update all 3 messages?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestConfirm_SuccessivePromptsShareInput(t *testing.T) {
	in := strings.NewReader("y\nn\n")

	first, err := Confirm(context.Background(), in, &bytes.Buffer{}, "First?")
	require.NoError(t, err)
	second, err := Confirm(context.Background(), in, &bytes.Buffer{}, "Second?")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestConfirm_EndOfInputAborts(t *testing.T) {
	var out bytes.Buffer
	_, err := Confirm(context.Background(), strings.NewReader(""), &out, "Proceed?")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestConfirm_NoInput(t *testing.T) {
	_, err := Confirm(context.Background(), nil, &bytes.Buffer{}, "Proceed?")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestConfirmer_AssumeYes(t *testing.T) {
	ok, err := Confirmer{AssumeYes: true}.Confirm(context.Background(), "Proceed?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSpinnerModel_QuitsWithWorkError(t *testing.T) {
	boom := errors.New("boom")
	m := newSpinnerModel("Analyzing", func() error { return boom })
	assert.Contains(t, m.View(), "Analyzing")

	next, cmd := m.Update(workDoneMsg{err: boom})
	require.NotNil(t, cmd)
	sm := next.(spinnerModel)
	assert.True(t, sm.done)
	assert.ErrorIs(t, sm.err, boom)
	assert.Empty(t, sm.View())
}

func TestRunWithSpinner_NonTerminalRunsDirectly(t *testing.T) {
	var out bytes.Buffer
	ran := false
	err := RunWithSpinner(context.Background(), &out, "Working", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Empty(t, out.String())
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, "Network unavailable or the Sublime API cannot be reached",
		humanizeServerUnavailableError(errors.New("Get \"https://api\": dial tcp: connection refused")))
	assert.Equal(t, "bad request", humanizeServerUnavailableError(errors.New("bad request")))
}

func TestReadLine(t *testing.T) {
	r := strings.NewReader("one\r\ntwo\nlast")

	for _, want := range []string{"one", "two", "last"} {
		got, err := readLine(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := readLine(r)
	assert.ErrorIs(t, err, io.EOF)
}
