// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [Config] can be used to reach the
// API. The API key is not required here: commands that need it fail later
// with a message explaining how to provide one.
func (c *Config) validate() error {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	c.API.BaseWebsocket = strings.TrimRight(strings.TrimSpace(c.API.BaseWebsocket), "/")

	if err := validateEndpoint(c.API.BaseURL, "http", "https"); err != nil {
		return fmt.Errorf("%w: BASE_URL: %w", ErrInvalidAPIConfigs, err)
	}

	if err := validateEndpoint(c.API.BaseWebsocket, "ws", "wss"); err != nil {
		return fmt.Errorf("%w: BASE_WEBSOCKET: %w", ErrInvalidAPIConfigs, err)
	}

	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAPIConfigs)
	}

	return nil
}

func validateEndpoint(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("%q must include scheme and host", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("%q must use one of %s", raw, strings.Join(schemes, ", "))
}
