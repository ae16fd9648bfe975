// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sublime-security/sublime-cli/internal/loader"
)

// MDMExtension is the file extension of saved message data models.
const MDMExtension = ".mdm"

// SaveFile creates path, including missing parent directories, and fills it
// with render.
func SaveFile(path string, render func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return render(f)
}

// DefaultMDMPath names the file a message data model generated from
// inputPath is saved to: the input base name with an .mdm extension for
// JSON or .txt for text, inside saveDir when it is set.
func DefaultMDMPath(saveDir, inputPath string, format Format) string {
	name := loader.BaseName(inputPath) + MDMExtension
	if format == FormatTXT {
		name = loader.BaseName(inputPath) + ".txt"
	}
	if saveDir == "" {
		return name
	}
	return filepath.Join(saveDir, name)
}

// RawMDMPath names the file the raw message data model of a flagged
// message is saved to.
func RawMDMPath(saveDir, id string) string {
	name := id + MDMExtension
	if saveDir == "" {
		return name
	}
	return filepath.Join(saveDir, name)
}
