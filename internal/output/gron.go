// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/sublime-security/sublime-cli/models"
)

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Gron flattens v into one assignment per value, rooted at root:
//
//	message_data_model = {};
//	message_data_model.headers.subject = "Invoice";
//	message_data_model.recipients[0] = "bob@example.com";
//
// Object keys are visited in lexical order so the output is greppable and
// diffable.
func Gron(v any, root string) string {
	var sb strings.Builder
	gronValue(&sb, root, v)
	return sb.String()
}

func gronValue(sb *strings.Builder, path string, v any) {
	if doc := models.AsDocument(v); doc != nil {
		sb.WriteString(path + " = {};\n")
		for _, k := range doc.Keys() {
			gronValue(sb, path+accessor(k), doc[k])
		}
		return
	}

	switch list := v.(type) {
	case []any:
		sb.WriteString(path + " = [];\n")
		for i, item := range list {
			gronValue(sb, path+"["+strconv.Itoa(i)+"]", item)
		}
		return
	case []models.Document:
		sb.WriteString(path + " = [];\n")
		for i, item := range list {
			gronValue(sb, path+"["+strconv.Itoa(i)+"]", item)
		}
		return
	}

	sb.WriteString(path + " = " + scalar(v) + ";\n")
}

func accessor(key string) string {
	if identifier.MatchString(key) {
		return "." + key
	}
	return "[" + scalar(key) + "]"
}

// scalar encodes a leaf value as JSON.
func scalar(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return strconv.Quote(err.Error())
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
