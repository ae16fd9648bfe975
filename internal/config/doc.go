// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and persistence
// for the sublime command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (production API endpoints)
//  2. The persisted settings file written by `sublime setup`
//  3. Environment variables (BASE_URL, BASE_WEBSOCKET, SUBLIME_API_KEY, ...)
//  4. Command-line flags (-k/--api-key, --log-level)
//
// The main entry points are [Load] for the runtime view and [SaveSettings]
// for updating the persisted settings file.
package config
