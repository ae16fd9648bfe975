// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "plain http", mutate: func(c *Config) { c.API.BaseURL = "http://127.0.0.1:8000" }},
		{name: "trailing slash trimmed", mutate: func(c *Config) { c.API.BaseURL = "https://x.io/" }},
		{name: "missing scheme", mutate: func(c *Config) { c.API.BaseURL = "api.example.com" }, wantErr: true},
		{name: "ws for http", mutate: func(c *Config) { c.API.BaseURL = "ws://api.example.com" }, wantErr: true},
		{name: "https for websocket", mutate: func(c *Config) { c.API.BaseWebsocket = "https://api.example.com" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.API.RequestTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAPIConfigs)
				return
			}
			assert.NoError(t, err)
			assert.NotContains(t, cfg.API.BaseURL[len(cfg.API.BaseURL)-1:], "/")
		})
	}
}
