// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

const jsonIndent = "    "

// MarshalJSON encodes v with a four-space indent and without HTML escaping.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("error encoding JSON output: %w", err)
	}
	return buf.Bytes(), nil
}

// highlightJSON colours src for a 256-colour terminal. Replaced in tests.
var highlightJSON = func(w io.Writer, src string) error {
	return quick.Highlight(w, src, "json", "terminal256", "monokai")
}

// WriteJSON writes v as indented JSON. With highlight set the output is
// coloured for a 256-colour terminal, falling back to plain JSON when the
// highlighter fails.
func WriteJSON(w io.Writer, v any, highlight bool) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}

	if highlight {
		var buf bytes.Buffer
		if err = highlightJSON(&buf, string(data)); err == nil {
			_, err = w.Write(buf.Bytes())
			return err
		}
	}

	_, err = w.Write(data)
	return err
}
