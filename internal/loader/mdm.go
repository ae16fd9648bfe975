// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sublime-security/sublime-cli/models"
)

// LoadMessageDataModel reads a JSON message data model from path.
func LoadMessageDataModel(path string) (models.Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadMDM, err)
	}
	return decodeMDM(data)
}

func decodeMDM(data []byte) (models.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var mdm map[string]any
	if err := dec.Decode(&mdm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadMDM, err)
	}
	if mdm == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrLoadMDM)
	}
	return mdm, nil
}
