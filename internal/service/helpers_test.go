// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleEML = "From: Alice <alice@example.com>\r\n" +
	"To: bob@example.com\r\n" +
	"Subject: Invoice\r\n" +
	"\r\n" +
	"Please pay.\r\n"

// fakeConfirmer answers every prompt with answer and records the prompts.
type fakeConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (f *fakeConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

// stubPermission records the commands it was asked about.
type stubPermission struct {
	err      error
	commands []string
}

func (p *stubPermission) Request(_ context.Context, command string) error {
	p.commands = append(p.commands, command)
	return p.err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
