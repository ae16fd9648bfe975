// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/mail"
)

// LoadEML reads the message at path and returns it base64-encoded.
func LoadEML(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoadEML, err)
	}
	return encodeEML(data)
}

// encodeEML checks that data is an RFC 5322 message and encodes the original
// bytes so header order and non-ASCII content survive untouched.
func encodeEML(data []byte) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", fmt.Errorf("%w: empty message", ErrLoadEML)
	}
	if _, err := mail.ReadMessage(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoadEML, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
