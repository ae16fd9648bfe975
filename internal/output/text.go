// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sublime-security/sublime-cli/models"
)

const unnamed = "(unnamed)"

// textRenderer builds the txt views. Styles are bound to the destination
// writer, so files and pipes receive plain text.
type textRenderer struct {
	opts Options

	header      lipgloss.Style
	key         lipgloss.Style
	value       lipgloss.Style
	notDetected lipgloss.Style
	fail        lipgloss.Style
	success     lipgloss.Style
	detected    lipgloss.Style
	warning     lipgloss.Style
}

func newTextRenderer(w io.Writer, opts Options) *textRenderer {
	r := lipgloss.NewRenderer(w)
	return &textRenderer{
		opts:        opts,
		header:      r.NewStyle().Bold(true),
		key:         r.NewStyle().Foreground(lipgloss.Color("4")),
		value:       r.NewStyle().Foreground(lipgloss.Color("2")),
		notDetected: r.NewStyle().Faint(true),
		fail:        r.NewStyle().Foreground(lipgloss.Color("9")),
		success:     r.NewStyle().Foreground(lipgloss.Color("2")),
		detected:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warning:     r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// resultsOf returns the results list of a multi response, or the single
// result wrapped in a list.
func resultsOf(doc models.Document) []models.Document {
	if doc.Has(models.FieldResults) {
		return doc.Documents(models.FieldResults)
	}
	if r := doc.Document(models.FieldResult); r != nil {
		return []models.Document{r}
	}
	return nil
}

// ── analyze ──────────────────────────────────────────────────────────────────

func (t *textRenderer) analyze(doc models.Document) string {
	var sb strings.Builder

	results := resultsOf(doc)
	if len(results) == 0 {
		sb.WriteString(t.notDetected.Render("No results") + "\n")
		return sb.String()
	}

	matched, lastKey := 0, ""
	for i, r := range results {
		if key := r.String(models.FieldMessageKey); key != "" && (i == 0 || key != lastKey) {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(t.header.Render(key) + "\n")
			lastKey = key
		}
		if t.detectionResult(&sb, r) {
			matched++
		}
	}

	summary := fmt.Sprintf("%d of %d detections matched", matched, len(results))
	if matched > 0 {
		summary = t.detected.Render(summary)
	} else {
		summary = t.notDetected.Render(summary)
	}
	sb.WriteString("\n" + summary + "\n")
	return sb.String()
}

// detectionResult writes one rule result and reports whether it matched.
func (t *textRenderer) detectionResult(sb *strings.Builder, r models.Document) bool {
	name := r.String("name")
	if name == "" {
		name = unnamed
	}

	matched, _ := r.Bool("result")
	switch {
	case r.String("error") != "":
		sb.WriteString(t.fail.Render(fmt.Sprintf("%-9s", "ERROR")) + name + ": " + r.String("error") + "\n")
		matched = false
	case matched:
		sb.WriteString(t.detected.Render(fmt.Sprintf("%-9s", "MATCH")) + name + "\n")
	default:
		sb.WriteString(t.notDetected.Render(fmt.Sprintf("%-9s", "no match")) + name + "\n")
	}

	if detection := r.String("detection"); detection != "" && (t.opts.Verbose || r.String("name") == "") {
		sb.WriteString(indent(FormatDetection(detection), 4) + "\n")
	}
	return matched
}

// ── query ────────────────────────────────────────────────────────────────────

func (t *textRenderer) query(doc models.Document) string {
	var sb strings.Builder

	hidden := 0
	for _, r := range resultsOf(doc) {
		value := r["result"]
		if isEmpty(value) && r.String("error") == "" && !t.opts.ShowAll {
			hidden++
			continue
		}

		title := r.String("name")
		if title == "" {
			title = r.String("query")
		}
		sb.WriteString(t.header.Render(firstLine(title)) + "\n")

		if t.opts.Verbose && r.String("name") != "" && r.String("query") != "" {
			sb.WriteString(indent(FormatDetection(r.String("query")), 4) + "\n")
		}

		if errText := r.String("error"); errText != "" {
			sb.WriteString("  " + t.fail.Render(errText) + "\n\n")
			continue
		}
		sb.WriteString(indent(queryValue(r.String("type"), value), 2) + "\n\n")
	}

	if hidden > 0 {
		sb.WriteString(t.notDetected.Render(fmt.Sprintf("%d queries returned no result (use --show-all to list them)", hidden)) + "\n")
	}
	if sb.Len() == 0 {
		sb.WriteString(t.notDetected.Render("No results") + "\n")
	}
	return sb.String()
}

// queryValue pretty-prints list and dict results, which the API may
// return either decoded or as JSON text.
func queryValue(typ string, value any) string {
	if typ == "list" || typ == "dict" {
		if s, ok := value.(string); ok {
			var decoded any
			dec := json.NewDecoder(strings.NewReader(s))
			dec.UseNumber()
			if err := dec.Decode(&decoded); err == nil {
				value = decoded
			}
		}
		if data, err := MarshalJSON(value); err == nil {
			return strings.TrimSuffix(string(data), "\n")
		}
	}
	return display(value)
}

// ── enrichment ───────────────────────────────────────────────────────────────

func (t *textRenderer) enrichDetails(details []models.Document) string {
	var sb strings.Builder

	successful := 0
	for _, d := range details {
		if ok, _ := d.Bool("success"); ok {
			successful++
		}
	}

	summary := fmt.Sprintf("%d/%d enrichment functions succeeded", successful, len(details))
	if successful == len(details) {
		summary = t.success.Render(summary)
	} else {
		summary = t.warning.Render(summary)
	}
	sb.WriteString(t.header.Render("Enrichment") + "\n" + summary + "\n")

	if t.opts.Verbose {
		for _, d := range details {
			name := d.String("name")
			if ok, _ := d.Bool("success"); ok {
				sb.WriteString("  " + t.success.Render(fmt.Sprintf("%-7s", "ok")) + name + "\n")
				continue
			}
			line := "  " + t.fail.Render(fmt.Sprintf("%-7s", "failed")) + name
			if msg := d.String("error"); msg != "" {
				line += ": " + msg
			}
			sb.WriteString(line + "\n")
		}
	}
	return sb.String()
}

// ── bulk outcomes ────────────────────────────────────────────────────────────

func (t *textRenderer) outcome(doc models.Document, verb, nameKey string) string {
	var sb strings.Builder

	success := doc.Documents("success")
	fail := doc.Documents("fail")

	sb.WriteString(t.header.Render(fmt.Sprintf("%s: %d", verb, len(success))) + "\n")
	for _, s := range success {
		label := firstNonEmpty(s.String(nameKey), s.String("name"), s.String("email_address"), s.String("id"), unnamed)
		sb.WriteString("  " + t.success.Render(label) + "\n")
		if t.opts.Verbose {
			if detection := s.String("detection"); detection != "" {
				sb.WriteString(indent(FormatDetection(detection), 4) + "\n")
			}
		}
	}

	if len(fail) > 0 {
		sb.WriteString("\n" + t.header.Render(fmt.Sprintf("Failed: %d", len(fail))) + "\n")
		for _, f := range fail {
			sb.WriteString("  " + t.fail.Render(firstNonEmpty(f.String("name"), unnamed)) + ": " + f.String("error") + "\n")
		}
	}
	return sb.String()
}

// ── detections ───────────────────────────────────────────────────────────────

var detectionFields = []string{"id", "active", "severity", "created_by_org_name", "created_at", "updated_at"}

func (t *textRenderer) detections(detections []models.Document) string {
	var sb strings.Builder

	if len(detections) == 0 {
		sb.WriteString(t.notDetected.Render("No detections found") + "\n")
		return sb.String()
	}

	for i, d := range detections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.header.Render(firstNonEmpty(d.String("name"), unnamed)) + "\n")

		shown := map[string]bool{"name": true, "detection": true}
		for _, k := range detectionFields {
			shown[k] = true
			if d.Has(k) {
				t.field(&sb, 2, k, d[k])
			}
		}
		if t.opts.Verbose {
			for _, k := range d.Keys() {
				if !shown[k] {
					t.field(&sb, 2, k, d[k])
				}
			}
		}

		if detection := d.String("detection"); detection != "" {
			sb.WriteString(indent(FormatDetection(detection), 4) + "\n")
		}
	}
	return sb.String()
}

// ── flagged messages ─────────────────────────────────────────────────────────

func (t *textRenderer) messages(doc models.Document) string {
	if doc.Has("enrichment_results") || doc.Has("detection_results") {
		return t.messageDetail(doc)
	}

	results := doc.Documents(models.FieldResults)
	if len(results) == 0 {
		return t.notDetected.Render("No messages found") + "\n"
	}
	return t.list(results, "subject", "message_data_model_id", "id")
}

func (t *textRenderer) messageDetail(doc models.Document) string {
	var sb strings.Builder

	mdm := doc.Document("message_data_model_result")
	sb.WriteString(t.header.Render("Message Data Model "+firstNonEmpty(mdm.String("id"), doc.String("id"))) + "\n")

	if details := doc.Document("enrichment_results").Documents(models.FieldDetails); details != nil {
		sb.WriteString("\n" + t.enrichDetails(details))
	}

	if results := doc.Documents("detection_results"); len(results) > 0 {
		sb.WriteString("\n" + t.header.Render("Detections") + "\n")
		for _, r := range results {
			t.detectionResult(&sb, r)
		}
	}
	return sb.String()
}

// ── events ───────────────────────────────────────────────────────────────────

func (t *textRenderer) events(events []models.Event) string {
	var sb strings.Builder

	sb.WriteString(t.header.Render(fmt.Sprintf("Events: %d", len(events))) + "\n")
	if len(events) == 0 {
		sb.WriteString(t.notDetected.Render("Waiting for events...") + "\n")
		return sb.String()
	}

	for _, e := range events {
		if e.Document == nil {
			sb.WriteString(e.Raw + "\n")
			continue
		}
		sb.WriteString("\n" + t.warning.Render(firstNonEmpty(e.Name(), "event")) + "\n")
		for _, k := range e.Document.Keys() {
			if k != "event_name" {
				t.field(&sb, 2, k, e.Document[k])
			}
		}
	}
	return sb.String()
}

// ── generic ──────────────────────────────────────────────────────────────────

// list writes one titled block per item. The title is the first non-empty
// value among titleKeys.
func (t *textRenderer) list(items []models.Document, titleKeys ...string) string {
	var sb strings.Builder

	if len(items) == 0 {
		sb.WriteString(t.notDetected.Render("Nothing to show") + "\n")
		return sb.String()
	}

	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		title, titleKey := unnamed, ""
		for _, k := range titleKeys {
			if v := item.String(k); v != "" {
				title, titleKey = v, k
				break
			}
		}
		sb.WriteString(t.header.Render(firstLine(title)) + "\n")
		for _, k := range item.Keys() {
			if k != titleKey {
				t.field(&sb, 2, k, item[k])
			}
		}
	}
	return sb.String()
}

func (t *textRenderer) generic(doc models.Document) string {
	if doc == nil {
		return t.success.Render("Done") + "\n"
	}

	var sb strings.Builder
	for _, k := range doc.Keys() {
		t.field(&sb, 0, k, doc[k])
	}
	return sb.String()
}

// field writes key: value, descending into objects and lists.
func (t *textRenderer) field(sb *strings.Builder, depth int, key string, v any) {
	pad := strings.Repeat(" ", depth)

	if doc := models.AsDocument(v); doc != nil {
		sb.WriteString(pad + t.key.Render(key) + ":\n")
		for _, k := range doc.Keys() {
			t.field(sb, depth+2, k, doc[k])
		}
		return
	}

	if list, ok := toList(v); ok {
		if len(list) == 0 {
			sb.WriteString(pad + t.key.Render(key) + ": " + t.notDetected.Render("[]") + "\n")
			return
		}
		sb.WriteString(pad + t.key.Render(key) + ":\n")
		for _, item := range list {
			if doc := models.AsDocument(item); doc != nil {
				sb.WriteString(pad + "  -\n")
				for _, k := range doc.Keys() {
					t.field(sb, depth+4, k, doc[k])
				}
				continue
			}
			sb.WriteString(pad + "  - " + t.styledValue(item) + "\n")
		}
		return
	}

	sb.WriteString(pad + t.key.Render(key) + ": " + t.styledValue(v) + "\n")
}

func (t *textRenderer) styledValue(v any) string {
	text := display(v)
	if strings.Contains(text, "\n") {
		return text
	}
	if v == nil {
		return t.notDetected.Render(text)
	}
	return t.value.Render(text)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func toList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []models.Document:
		out := make([]any, len(list))
		for i, d := range list {
			out[i] = d
		}
		return out, true
	default:
		return nil, false
	}
}

// display renders a leaf value for humans: strings unquoted, null as
// "null", everything else as JSON.
func display(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return scalar(v)
	}
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case models.Document:
		return len(val) == 0
	default:
		return false
	}
}

func indent(text string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
