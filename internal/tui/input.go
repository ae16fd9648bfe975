// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readLine reads up to and excluding the next newline, one byte at a time
// so nothing past the line is consumed. A final line without a newline is
// returned as is; io.EOF is only returned when nothing was read.
func readLine(r io.Reader) (string, error) {
	var (
		sb  strings.Builder
		buf [1]byte
	)
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			if buf[0] == '\n' {
				return strings.TrimSuffix(sb.String(), "\r"), nil
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return strings.TrimSuffix(sb.String(), "\r"), nil
			}
			return "", err
		}
	}
}
