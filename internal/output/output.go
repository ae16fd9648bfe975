// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package output renders API results for the terminal or for a file.
//
// Two formats are supported. [FormatJSON] writes indented JSON, highlighted
// when the destination is a terminal. [FormatTXT] writes a per-command text
// view styled with lipgloss; styles degrade to plain text when the
// destination does not support colour.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sublime-security/sublime-cli/models"
)

// Format selects how a result is written.
type Format string

const (
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
)

// Formats lists every accepted format in help-text order.
var Formats = []Format{FormatJSON, FormatTXT}

// ErrInvalidFormat is returned by ParseFormat for unknown formats.
var ErrInvalidFormat = errors.New("invalid output format")

// ParseFormat accepts "json" or "txt" in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected json or txt)", ErrInvalidFormat, s)
}

// Kind selects the text view of a result.
type Kind string

const (
	KindGeneric          Kind = "generic"
	KindAnalyze          Kind = "analyze"
	KindQuery            Kind = "query"
	KindMDM              Kind = "mdm"
	KindEnrichDetails    Kind = "enrich_details"
	KindCreateDetections Kind = "create_detections"
	KindUpdateDetections Kind = "update_detections"
	KindOutcome          Kind = "outcome"
	KindDetections       Kind = "detections"
	KindMessages         Kind = "messages"
	KindUsers            Kind = "users"
)

// Options tune the text views.
type Options struct {
	Verbose bool
	// ShowAll keeps query results that returned nothing.
	ShowAll bool
	// Highlight enables JSON syntax highlighting.
	Highlight bool
}

// Render writes doc to w in the given format.
func Render(w io.Writer, format Format, kind Kind, doc models.Document, opts Options) error {
	if format == FormatJSON {
		return WriteJSON(w, doc, opts.Highlight)
	}

	t := newTextRenderer(w, opts)
	var text string
	switch kind {
	case KindAnalyze:
		text = t.analyze(doc)
	case KindQuery:
		text = t.query(doc)
	case KindMDM:
		text = Gron(doc, "message_data_model")
	case KindEnrichDetails:
		text = t.enrichDetails(doc.Documents(models.FieldDetails))
	case KindCreateDetections:
		text = t.outcome(doc, "Created", "name")
	case KindUpdateDetections:
		text = t.outcome(doc, "Updated", "original_name")
	case KindOutcome:
		text = t.outcome(doc, "Succeeded", "name")
	case KindDetections:
		text = t.detections(doc.Documents(models.FieldDetections))
	case KindMessages:
		text = t.messages(doc)
	case KindUsers:
		text = t.list(doc.Documents("users"), "email_address")
	default:
		text = t.generic(doc)
	}

	_, err := io.WriteString(w, text)
	return err
}

// RenderEvents writes the listen queue to w.
func RenderEvents(w io.Writer, format Format, events []models.Event, opts Options) error {
	if format == FormatJSON {
		items := make([]any, 0, len(events))
		for _, e := range events {
			if e.Document != nil {
				items = append(items, e.Document)
			} else {
				items = append(items, e.Raw)
			}
		}
		return WriteJSON(w, items, opts.Highlight)
	}

	_, err := io.WriteString(w, newTextRenderer(w, opts).events(events))
	return err
}
