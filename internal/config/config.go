// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultBaseURL is the production HTTP API endpoint.
	DefaultBaseURL = "https://api.sublimesecurity.com"
	// DefaultBaseWebsocket is the production real-time endpoint.
	DefaultBaseWebsocket = "wss://api.sublimesecurity.com"
	// DefaultRequestTimeout bounds a single API request.
	DefaultRequestTimeout = 60 * time.Second
	// DefaultLogLevel keeps diagnostics quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// EnvironmentLocal relaxes transport security for local development.
	EnvironmentLocal = "local"
)

// Config is the top-level runtime configuration of the client. It is
// populated by merging defaults, the persisted settings file, environment
// variables and command-line flags.
//
// Struct tags:
//   - env - environment variable name for scalar fields (caarlos0/env).
//   - json - key in the persisted settings file.
type Config struct {
	// API holds the remote endpoints and transport settings.
	API API

	// Settings holds the values persisted by `sublime setup`, possibly
	// overridden by the environment.
	Settings Settings

	// Log holds diagnostic output settings.
	Log Log

	// SettingsPath is the location of the persisted settings file.
	// Env: SUBLIME_CONFIG
	SettingsPath string `env:"SUBLIME_CONFIG"`
}

// API holds endpoint and transport settings for the remote service.
type API struct {
	// BaseURL is the root of the HTTP API, without the version segment.
	// Env: BASE_URL
	BaseURL string `env:"BASE_URL"`

	// BaseWebsocket is the root of the real-time endpoint used by listen.
	// Env: BASE_WEBSOCKET
	BaseWebsocket string `env:"BASE_WEBSOCKET"`

	// RequestTimeout is the maximum duration of a single HTTP request
	// (e.g. "30s", "2m").
	// Env: SUBLIME_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SUBLIME_REQUEST_TIMEOUT"`

	// Environment names the deployment the client talks to. "local"
	// disables TLS enforcement for the real-time stream.
	// Env: ENV
	Environment string `env:"ENV"`
}

// Settings are the user preferences persisted by `sublime setup`.
type Settings struct {
	// APIKey is sent in the Key header of every request.
	// Env: SUBLIME_API_KEY
	APIKey string `env:"SUBLIME_API_KEY" json:"api_key"`

	// SaveDir is the default directory for files retrieved from the API
	// (message data models, enrichment output).
	// Env: SUBLIME_SAVE_DIR
	SaveDir string `env:"SUBLIME_SAVE_DIR" json:"save_dir"`

	// Permission records that the user accepted that messages are sent to
	// the remote service for processing. It is only ever set by the client.
	Permission bool `json:"permission"`
}

// Log holds diagnostic output settings.
type Log struct {
	// Level is the minimum zerolog level written to stderr.
	// Env: SUBLIME_LOG_LEVEL
	Level string `env:"SUBLIME_LOG_LEVEL"`
}

// Overrides carries values supplied as command-line flags. Empty fields
// leave lower-priority sources untouched.
type Overrides struct {
	APIKey   string
	LogLevel string
}

// IsLocal reports whether the client targets a local development stack.
func (a API) IsLocal() bool {
	return a.Environment == EnvironmentLocal
}

// Load assembles the runtime configuration from every source and validates
// it. A missing settings file is not an error.
func Load(overrides Overrides) (*Config, error) {
	return newConfigBuilder().
		withDefaults().
		withSettingsFile().
		withEnv().
		withFlags(overrides).
		build()
}

func defaultConfig() *Config {
	return &Config{
		API: API{
			BaseURL:        DefaultBaseURL,
			BaseWebsocket:  DefaultBaseWebsocket,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
