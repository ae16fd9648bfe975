// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/output"
	"github.com/sublime-security/sublime-cli/models"
)

// commonFlags are shared by every command talking to the API.
type commonFlags struct {
	apiKey  string
	output  string
	format  string
	verbose int
	yes     bool
}

func (f *commonFlags) register(cmd *cobra.Command, defaultFormat output.Format) {
	flags := cmd.Flags()
	flags.StringVarP(&f.apiKey, "api-key", "k", "", "Key to include in API requests")
	flags.StringVarP(&f.output, "output", "o", "", "Output file")
	flags.StringVarP(&f.format, "format", "f", string(defaultFormat), "Output format (json, txt)")
	flags.CountVarP(&f.verbose, "verbose", "v", "Verbose output")
	flags.BoolVarP(&f.yes, "yes", "y", false, "Answer yes to every confirmation prompt")
}

func (f *commonFlags) parseFormat() (output.Format, error) {
	return output.ParseFormat(f.format)
}

// boolChoice is a "true"/"false" flag that remembers whether it was given.
type boolChoice struct {
	set   bool
	value bool
}

func (b *boolChoice) String() string {
	if !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

func (b *boolChoice) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		b.value = true
	case "false":
		b.value = false
	default:
		return fmt.Errorf("invalid choice %q: use true or false", s)
	}
	b.set = true
	return nil
}

func (b *boolChoice) Type() string {
	return "true|false"
}

// Ptr returns nil when the flag was not given.
func (b *boolChoice) Ptr() *bool {
	if !b.set {
		return nil
	}
	v := b.value
	return &v
}

// timestampFlag parses ISO 8601 dates and date-times.
type timestampFlag struct {
	ts *models.Timestamp
}

func (t *timestampFlag) String() string {
	if t.ts == nil {
		return ""
	}
	return t.ts.ISO()
}

func (t *timestampFlag) Set(s string) error {
	ts, err := models.ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.ts = &ts
	return nil
}

func (t *timestampFlag) Type() string {
	return "timestamp"
}

func (t *timestampFlag) Ptr() *models.Timestamp {
	return t.ts
}
