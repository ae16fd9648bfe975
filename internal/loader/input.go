// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// InputKind identifies how a message input must be read.
type InputKind string

const (
	KindEML  InputKind = "eml"
	KindMSG  InputKind = "msg"
	KindMBOX InputKind = "mbox"
	KindMDM  InputKind = "mdm"
)

const gzipExt = ".gz"

// DetectInputKind maps a file name to its kind by extension. A trailing .gz
// is ignored. Unknown extensions are treated as EML.
func DetectInputKind(name string) InputKind {
	name = strings.ToLower(name)
	name = strings.TrimSuffix(name, gzipExt)

	switch filepath.Ext(name) {
	case ".mdm":
		return KindMDM
	case ".msg":
		return KindMSG
	case ".mbox":
		return KindMBOX
	default:
		return KindEML
	}
}

// BaseName returns the file name without directory, compression suffix or
// kind extension, e.g. "dir/phish.eml.gz" becomes "phish".
func BaseName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, gzipExt)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens path for reading, decompressing gzip content (detected by
// magic bytes) on the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := Decompress(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &readCloser{Reader: r, closers: []io.Closer{f}}, nil
}

// Decompress returns a reader over r that inflates gzip streams and passes
// everything else through unchanged.
func Decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil || !bytes.Equal(magic, []byte{0x1f, 0x8b}) {
		return br, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("invalid gzip stream: %w", err)
	}
	return zr, nil
}

func readFile(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
