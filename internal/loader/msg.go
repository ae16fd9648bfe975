// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"unicode/utf16"

	"github.com/richardlehane/mscfb"
)

// MAPI property tags read from an Outlook message.
const (
	propTransportHeaders = "007D"
	propBody             = "1000"
	propHTMLBody         = "1013"
	propSubject          = "0037"
	propSenderEmail      = "0C1F"
	propDisplayTo        = "0E04"

	streamPrefix = "__substg1.0_"

	typeUnicode = "001F"
	typeString8 = "001E"
	typeBinary  = "0102"
)

// contentHeaders describe the original MIME structure and are replaced when
// the message is rebuilt.
var contentHeaders = map[string]bool{
	"content-type":              true,
	"content-transfer-encoding": true,
	"mime-version":              true,
}

// LoadMSG converts the Outlook message at path to an RFC 5322 message and
// returns it base64-encoded.
func LoadMSG(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoadMSG, err)
	}
	return ReadMSG(bytes.NewReader(data))
}

// ReadMSG converts an Outlook compound file to an RFC 5322 message and
// returns it base64-encoded.
func ReadMSG(r io.ReaderAt) (string, error) {
	props, err := readMSGProperties(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoadMSG, err)
	}
	if len(props) == 0 {
		return "", fmt.Errorf("%w: no message properties found", ErrLoadMSG)
	}

	raw := buildMessage(props)
	return base64.StdEncoding.EncodeToString(raw), nil
}

// readMSGProperties collects the top-level string properties of the message,
// keyed by property id. Attachments and recipients live in sub-storages and
// are skipped.
func readMSGProperties(r io.ReaderAt) (map[string]string, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return nil, err
	}

	props := make(map[string]string)
	for entry, err := doc.Next(); ; entry, err = doc.Next() {
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(entry.Path) != 0 || !strings.HasPrefix(entry.Name, streamPrefix) {
			continue
		}

		tag := strings.TrimPrefix(entry.Name, streamPrefix)
		if len(tag) != 8 {
			continue
		}
		id, typ := strings.ToUpper(tag[:4]), strings.ToUpper(tag[4:])

		data, err := io.ReadAll(entry)
		if err != nil {
			return nil, err
		}

		switch typ {
		case typeUnicode:
			props[id] = decodeUTF16(data)
		case typeString8, typeBinary:
			props[id] = strings.TrimRight(string(data), "\x00")
		}
	}

	return props, nil
}

func decodeUTF16(b []byte) string {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, binary.LittleEndian.Uint16(b[i:]))
	}
	return strings.TrimRight(string(utf16.Decode(units)), "\x00")
}

// buildMessage assembles headers and a single-part body. Transport headers
// are preferred; without them the basic envelope is rebuilt from the
// subject, sender and recipient properties.
func buildMessage(props map[string]string) []byte {
	var buf bytes.Buffer

	if headers := strings.TrimSpace(props[propTransportHeaders]); headers != "" {
		writeHeaders(&buf, headers)
	} else {
		if v := props[propSenderEmail]; v != "" {
			fmt.Fprintf(&buf, "From: %s\r\n", v)
		}
		if v := props[propDisplayTo]; v != "" {
			fmt.Fprintf(&buf, "To: %s\r\n", v)
		}
		if v := props[propSubject]; v != "" {
			fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", v))
		}
	}

	body, contentType := props[propBody], "text/plain"
	if strings.TrimSpace(body) == "" && props[propHTMLBody] != "" {
		body, contentType = props[propHTMLBody], "text/html"
	}

	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: %s; charset=\"utf-8\"\r\n", contentType)
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\n", "\r\n"))

	return buf.Bytes()
}

// writeHeaders copies transport headers, including folded continuation
// lines, except the ones describing the original MIME structure.
func writeHeaders(buf *bytes.Buffer, headers string) {
	skip := false
	for _, line := range strings.Split(strings.ReplaceAll(headers, "\r\n", "\n"), "\n") {
		if line == "" {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			name, _, _ := strings.Cut(line, ":")
			skip = contentHeaders[strings.ToLower(strings.TrimSpace(name))]
		}
		if skip {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\r\n")
	}
}
