// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/mail"
	"strings"

	"github.com/emersion/go-mbox"
	"github.com/sublime-security/sublime-cli/internal/logger"
)

// EmptySubject keys messages without a subject.
const EmptySubject = "[Empty Subject]"

// MBOXMessage is one message of a mailbox. Key is the decoded subject,
// suffixed with " (n)" when an earlier message had the same subject.
type MBOXMessage struct {
	Key     string
	Message string
}

// LoadMBOX reads every message of the mailbox at path, in file order.
// Messages that cannot be parsed are logged and skipped.
func LoadMBOX(ctx context.Context, path string) ([]MBOXMessage, error) {
	r, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadMBOX, err)
	}
	defer r.Close()

	return ReadMBOX(ctx, r)
}

// ReadMBOX reads every message of a mailbox stream.
func ReadMBOX(ctx context.Context, r io.Reader) ([]MBOXMessage, error) {
	log := logger.FromContext(ctx)
	mr := mbox.NewReader(r)

	var (
		messages []MBOXMessage
		seen     = make(map[string]bool)
		decoder  = new(mime.WordDecoder)
	)

	for i := 1; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		msgReader, err := mr.NextMessage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: message %d: %w", ErrLoadMBOX, i, err)
		}

		raw, err := io.ReadAll(msgReader)
		if err != nil {
			return nil, fmt.Errorf("%w: message %d: %w", ErrLoadMBOX, i, err)
		}

		msg, err := mail.ReadMessage(bytes.NewReader(raw))
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("failed to decode mailbox message, skipping")
			continue
		}

		subject := strings.TrimSpace(msg.Header.Get("Subject"))
		if decoded, err := decoder.DecodeHeader(subject); err == nil {
			subject = decoded
		}
		if subject == "" {
			subject = EmptySubject
		}

		key := subject
		for n := 1; seen[key]; n++ {
			key = fmt.Sprintf("%s (%d)", subject, n)
		}
		seen[key] = true

		messages = append(messages, MBOXMessage{
			Key:     key,
			Message: base64.StdEncoding.EncodeToString(raw),
		})
	}

	log.Debug().Int("messages", len(messages)).Msg("mailbox loaded")
	return messages, nil
}
