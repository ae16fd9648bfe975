// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sublime-security/sublime-cli/models"
)

const sampleEML = "From: Alice <alice@example.com>\r\n" +
	"To: bob@example.com\r\n" +
	"Subject: Invoice\r\n" +
	"\r\n" +
	"Please pay.\r\n"

// ── helpers ───────────────────────────────────────────────────────────────────

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func gzipBytes(t *testing.T, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func decode(t *testing.T, s string) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	return string(raw)
}

// ── DetectInputKind / BaseName ───────────────────────────────────────────────

func TestDetectInputKind(t *testing.T) {
	tests := map[string]InputKind{
		"a.mdm":        KindMDM,
		"A.MSG":        KindMSG,
		"box.mbox":     KindMBOX,
		"box.mbox.gz":  KindMBOX,
		"mail.eml":     KindEML,
		"mail":         KindEML,
		"mail.txt":     KindEML,
		"dir/x.mdm.gz": KindMDM,
	}
	for name, want := range tests {
		assert.Equal(t, want, DetectInputKind(name), name)
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "phish", BaseName("/tmp/dir/phish.eml"))
	assert.Equal(t, "phish", BaseName("phish.eml.gz"))
	assert.Equal(t, "phish", BaseName("phish"))
}

// ── EML ──────────────────────────────────────────────────────────────────────

func TestLoadEML_Plain(t *testing.T) {
	path := writeFile(t, t.TempDir(), "m.eml", sampleEML)

	got, err := LoadEML(path)
	require.NoError(t, err)
	assert.Equal(t, sampleEML, decode(t, got))
}

func TestLoadEML_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.eml.gz")
	require.NoError(t, os.WriteFile(path, gzipBytes(t, sampleEML), 0o600))

	got, err := LoadEML(path)
	require.NoError(t, err)
	assert.Equal(t, sampleEML, decode(t, got))
}

func TestLoadEML_Invalid(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadEML(writeFile(t, dir, "bad.eml", "this is not a message"))
	assert.ErrorIs(t, err, ErrLoadEML)

	_, err = LoadEML(writeFile(t, dir, "blank.eml", "   "))
	assert.ErrorIs(t, err, ErrLoadEML)
}

func TestLoadEML_Missing(t *testing.T) {
	_, err := LoadEML(filepath.Join(t.TempDir(), "nope.eml"))
	assert.ErrorIs(t, err, ErrLoadEML)
}

// ── MDM ──────────────────────────────────────────────────────────────────────

func TestLoadMessageDataModel(t *testing.T) {
	path := writeFile(t, t.TempDir(), "m.mdm", `{"subject":{"subject":"hi"},"size":12345678901234}`)

	mdm, err := LoadMessageDataModel(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", mdm.Document("subject").String("subject"))
	assert.Equal(t, "12345678901234", mdm.String("size"))
}

func TestLoadMessageDataModel_Invalid(t *testing.T) {
	dir := t.TempDir()
	for i, in := range []string{"", "[1,2]", "null", "{broken"} {
		_, err := LoadMessageDataModel(writeFile(t, dir, fmt.Sprintf("m%d.mdm", i), in))
		assert.ErrorIs(t, err, ErrLoadMDM, in)
	}
}

// ── MBOX ─────────────────────────────────────────────────────────────────────

func TestReadMBOX_KeysAndOrder(t *testing.T) {
	mboxData := "From alice@example.com Thu Jan  1 00:00:00 2021\n" +
		"Subject: Hello\n\nfirst\n\n" +
		"From alice@example.com Thu Jan  1 00:00:01 2021\n" +
		"Subject: Hello\n\nsecond\n\n" +
		"From alice@example.com Thu Jan  1 00:00:02 2021\n" +
		"To: bob@example.com\n\nno subject\n\n" +
		"From alice@example.com Thu Jan  1 00:00:03 2021\n" +
		"Subject: =?utf-8?q?Caf=C3=A9?=\n\nencoded\n"

	got, err := ReadMBOX(context.Background(), strings.NewReader(mboxData))
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "Hello", got[0].Key)
	assert.Equal(t, "Hello (1)", got[1].Key)
	assert.Equal(t, EmptySubject, got[2].Key)
	assert.Equal(t, "Café", got[3].Key)
	assert.Contains(t, decode(t, got[1].Message), "second")
}

func TestReadMBOX_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadMBOX(ctx, strings.NewReader("From a Thu Jan  1 00:00:00 2021\nSubject: x\n\nbody\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

// ── MSG ──────────────────────────────────────────────────────────────────────

func TestReadMSG_NotCompoundFile(t *testing.T) {
	_, err := ReadMSG(bytes.NewReader([]byte(sampleEML)))
	assert.ErrorIs(t, err, ErrLoadMSG)
}

func TestDecodeUTF16(t *testing.T) {
	raw := []byte{'H', 0, 'i', 0, 0xE9, 0, 0, 0}
	assert.Equal(t, "Hié", decodeUTF16(raw))
}

func TestBuildMessage_FromTransportHeaders(t *testing.T) {
	props := map[string]string{
		propTransportHeaders: "Received: from mx\r\n\tby relay\r\nSubject: Hi\r\n" +
			"Content-Type: multipart/mixed;\r\n\tboundary=\"x\"\r\nFrom: a@b.c\r\n",
		propBody: "line one\nline two",
	}

	msg := string(buildMessage(props))

	assert.Contains(t, msg, "Received: from mx\r\n\tby relay\r\n")
	assert.Contains(t, msg, "From: a@b.c\r\n")
	assert.NotContains(t, msg, "multipart/mixed")
	assert.NotContains(t, msg, "boundary")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=\"utf-8\"\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nline one\r\nline two"))
}

func TestBuildMessage_Envelope(t *testing.T) {
	props := map[string]string{
		propSenderEmail: "a@b.c",
		propDisplayTo:   "Bob",
		propSubject:     "Hello",
		propHTMLBody:    "<p>hi</p>",
	}

	msg := string(buildMessage(props))

	assert.True(t, strings.HasPrefix(msg, "From: a@b.c\r\nTo: Bob\r\nSubject: Hello\r\n"))
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.Contains(t, msg, "<p>hi</p>")
}

// ── PQL ──────────────────────────────────────────────────────────────────────

func TestParseDetections(t *testing.T) {
	input := `# a comment
; First rule
sender.email.domain.domain == "example.com"

   

;Second;
any(body.links,
    .href_url.domain.domain == "evil.com")
# trailing comment
type.inbound`

	got, err := ParseDetections(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.Detection{Name: "First rule", Detection: `sender.email.domain.domain == "example.com"`}, got[0])
	assert.Equal(t, "Second", got[1].Name)
	assert.Equal(t, `any(body.links,  .href_url.domain.domain == "evil.com")  type.inbound`, got[1].Detection)
}

func TestParseQueries_Unnamed(t *testing.T) {
	got, err := ParseQueries(strings.NewReader("\n\nsubject.subject\n\nsender.email\n"))
	require.NoError(t, err)
	assert.Equal(t, []models.Query{{Query: "subject.subject"}, {Query: "sender.email"}}, got)
}

func TestParseDetections_Empty(t *testing.T) {
	_, err := ParseDetections(strings.NewReader("# only comments\n; name\n\n"))
	assert.ErrorIs(t, err, ErrNoDetections)
}

// ── YAML / paths ─────────────────────────────────────────────────────────────

func TestParseYAML(t *testing.T) {
	rules, queries, err := parseYAML(strings.NewReader(`
rules:
  - name: r1
    source: "true"
    severity: high
queries:
  - name: q1
    source: subject.subject
`), "lists.yml")
	require.NoError(t, err)
	assert.Equal(t, []source{{Name: "r1", Source: "true", Severity: "high"}}, rules)
	assert.Equal(t, []source{{Name: "q1", Source: "subject.subject"}}, queries)

	rules, queries, err = parseYAML(strings.NewReader("name: single\nsource: x\n"), "single.yml")
	require.NoError(t, err)
	assert.Empty(t, rules)
	assert.Equal(t, []source{{Name: "single", Source: "x"}}, queries)

	rules, _, err = parseYAML(strings.NewReader("type: rule\nname: r\nsource: y\n"), "rule.yml")
	require.NoError(t, err)
	assert.Equal(t, []source{{Name: "r", Source: "y"}}, rules)
}

func TestParseYAML_Errors(t *testing.T) {
	inputs := map[string]string{
		"missing source": "name: x\n",
		"bad type":       "type: other\nsource: x\n",
		"not a map":      "- a\n- b\n",
		"empty":          "",
		"list no source": "rules:\n  - name: x\n",
	}
	for name, in := range inputs {
		_, _, err := parseYAML(strings.NewReader(in), name)
		assert.ErrorIs(t, err, ErrLoadDetections, name)
	}
}

func TestLoadDetectionsPath_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pql", "; a\ntrue\n")
	writeFile(t, dir, "nested/b.pql", "; b\nfalse\n")
	writeFile(t, dir, "nested/c.yml", "type: rule\nname: c\nsource: c_source\n")
	writeFile(t, dir, "nested/q.yaml", "name: q\nsource: q_source\n")
	writeFile(t, dir, "broken.yml", "name: no source\n")
	writeFile(t, dir, "notes.txt", "ignored")

	detections, err := LoadDetectionsPath(context.Background(), dir)
	require.NoError(t, err)

	var names []string
	for _, d := range detections {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	queries, err := LoadQueriesPath(context.Background(), dir)
	require.NoError(t, err)
	var qnames []string
	for _, q := range queries {
		qnames = append(qnames, q.Name)
	}
	assert.Equal(t, []string{"a", "b", "q"}, qnames)
}

func TestLoadDetectionsPath_File(t *testing.T) {
	dir := t.TempDir()
	pql := writeFile(t, dir, "rules.pql", "; one\ntrue\n")
	yml := writeFile(t, dir, "only-query.yml", "source: x\n")

	got, err := LoadDetectionsPath(context.Background(), pql)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = LoadDetectionsPath(context.Background(), yml)
	assert.ErrorIs(t, err, ErrNoDetections)

	_, err = LoadDetectionsPath(context.Background(), filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrLoadDetections)
}
