// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader reads local inputs for the API: raw messages (EML, Outlook
// MSG, MBOX), message data models, and detection or query files (PQL and
// YAML).
//
// Raw messages are returned base64-encoded, ready to be placed in a request
// body. Inputs ending in .gz are decompressed transparently.
package loader
