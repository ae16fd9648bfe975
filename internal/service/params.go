// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/sublime-security/sublime-cli/models"

// MessageParams selects a local message and how the API should treat it.
type MessageParams struct {
	// InputPath is an EML or MSG file, optionally gzip-compressed.
	InputPath string
	// Mailbox is the address of the mailbox the message was found in.
	Mailbox string
	// RouteType is one of inbound, internal or outbound, in any case.
	RouteType string
}

// AnalyzeParams describes an analyze run. Exactly one of DetectionsPath
// and RawDetection is expected; DetectionsPath wins when both are set.
type AnalyzeParams struct {
	MessageParams
	DetectionsPath string
	RawDetection   string
	Verbose        bool
}

// QueryParams describes a query run against a message data model file.
type QueryParams struct {
	InputPath   string
	QueriesPath string
	RawQuery    string
	Verbose     bool
}

// CreateDetectionsParams describes detections to store in the
// organisation.
type CreateDetectionsParams struct {
	DetectionsPath string
	RawDetection   string
	Name           string
	Active         bool
	Verbose        bool
}

// UpdateDetectionsParams targets organisation detections either by file,
// by id or by name. Nil Active leaves the stored state unchanged.
type UpdateDetectionsParams struct {
	DetectionsPath string
	ID             string
	Name           string
	RawDetection   string
	Active         *bool
}

// GetDetectionsParams looks up detections by id or name, or lists them.
type GetDetectionsParams struct {
	ID        string
	Name      string
	Active    *bool
	Search    string
	Community bool
}

// GetMessagesParams lists flagged messages, or fetches one when ID is set.
type GetMessagesParams struct {
	ID string
	// NotFlagged inverts the listing to messages without a match.
	NotFlagged bool
	Reviewed   *bool
	Safe       *bool
	After      *models.Timestamp
	Before     *models.Timestamp
}

// ReviewMessagesParams reviews a single message or, with All, every
// flagged unreviewed message in the window.
type ReviewMessagesParams struct {
	ID       string
	All      bool
	Reviewed bool
	Safe     bool
	After    *models.Timestamp
	Before   *models.Timestamp
}

// UpdateUsersParams sets the license of one user or of every user.
type UpdateUsersParams struct {
	Email         string
	All           bool
	LicenseActive bool
}

// SubscribeParams targets a community detection by id, or every
// community detection authored by an organisation or user.
type SubscribeParams struct {
	ID            string
	CreatedByOrg  string
	CreatedByUser string
	Active        bool
	Unsubscribe   bool
}

// ShareParams shares or unshares an organisation detection.
type ShareParams struct {
	ID        string
	ShareName bool
	ShareOrg  bool
	Unshare   bool
}

// BacktestParams describes detections to run across historical messages.
type BacktestParams struct {
	DetectionsPath string
	RawDetection   string
	Name           string
	After          *models.Timestamp
	Before         *models.Timestamp
	// Progress receives one line per job state change. May be nil.
	Progress func(line string)
}
