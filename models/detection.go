// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Detection is a single detection rule submitted to the API. Source holds
// the rule text; Name is optional for local analysis but required when the
// detection is stored in the organisation.
type Detection struct {
	Name      string `json:"name,omitempty"`
	Detection string `json:"detection"`
	Severity  string `json:"severity,omitempty"`
}

// Query is a single query evaluated against a message data model.
type Query struct {
	Name     string `json:"name,omitempty"`
	Query    string `json:"query"`
	Severity string `json:"severity,omitempty"`
}

// RouteType is the direction of a message relative to the organisation.
type RouteType string

const (
	RouteInbound  RouteType = "inbound"
	RouteInternal RouteType = "internal"
	RouteOutbound RouteType = "outbound"
)

// RouteTypes lists every accepted route type in help-text order.
var RouteTypes = []RouteType{RouteInbound, RouteInternal, RouteOutbound}

// ParseRouteType accepts a route type in any letter case. An empty string
// yields [RouteInbound].
func ParseRouteType(s string) (RouteType, error) {
	if s == "" {
		return RouteInbound, nil
	}
	rt := RouteType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range RouteTypes {
		if rt == known {
			return rt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRouteType, s)
}
