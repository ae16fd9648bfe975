// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// naiveLayout is used for timestamps given without a UTC offset.
const naiveLayout = "2006-01-02T15:04:05"

// timestampLayouts are the accepted --after/--before input formats. The
// boolean marks layouts that carry an explicit offset.
var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{"2006-01-02", false},
	{naiveLayout, false},
	{"2006-01-02T15:04:05.999999-0700", true},
	{"2006-01-02 15:04:05", false},
	{time.RFC3339Nano, true},
}

// Timestamp is an ISO 8601 instant supplied on the command line.
//
// Timestamps parsed without an offset are sent back without one so the
// server applies its own default zone.
type Timestamp struct {
	time.Time
	zoned bool
}

// ParseTimestamp parses s using any of the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, l := range timestampLayouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			return Timestamp{Time: t, zoned: l.zoned}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("%w: %q (expected ISO 8601, e.g. 2006-01-02 or 2006-01-02T15:04:05)", ErrInvalidTimestamp, s)
}

// ISO returns the wire representation of the timestamp.
func (t Timestamp) ISO() string {
	if t.zoned {
		return t.Time.Format(time.RFC3339Nano)
	}
	return t.Time.Format(naiveLayout)
}

// String implements fmt.Stringer.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.ISO()
}

// MarshalJSON encodes the timestamp as an ISO string, or null when zero.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.ISO())
}
