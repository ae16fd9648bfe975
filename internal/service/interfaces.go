// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the command semantics of the sublime client on
// top of [adapter.ServerAdapter]: input loading, request shaping, result
// ordering, bulk confirmations and job polling.
//
// Every method returns the document that the output layer renders. Failures
// are either sentinel errors declared in this package or adapter errors
// passed through unchanged, so callers can match them with [errors.Is].
package service

import (
	"context"

	"github.com/sublime-security/sublime-cli/models"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// PermissionService guards uploads of message content behind a one-time
// privacy notice.
type PermissionService interface {
	// Request returns nil when the notice was accepted now or earlier, and
	// ErrPermissionDenied when it was declined. command selects the notice
	// wording.
	Request(ctx context.Context, command string) error
}

// MessageService sends local messages and message data models to the API.
type MessageService interface {
	// Enrich creates an enriched message data model. The response carries
	// message_data_model and details.
	Enrich(ctx context.Context, params MessageParams) (models.Document, error)

	// Generate creates a message data model without enrichment.
	Generate(ctx context.Context, params MessageParams) (models.Document, error)

	// Analyze runs detections against an EML, MSG, MBOX or message data
	// model file. Results are ordered by detection name.
	Analyze(ctx context.Context, params AnalyzeParams) (models.Document, error)

	// Query runs queries against a message data model file.
	Query(ctx context.Context, params QueryParams) (models.Document, error)
}

// DetectionService manages organisation and community detections.
type DetectionService interface {
	// Create stores every detection and reports per-detection outcome as
	// {success, fail}.
	Create(ctx context.Context, params CreateDetectionsParams) (models.Document, error)

	// Update patches detections by file, id or name and reports
	// {success, fail}.
	Update(ctx context.Context, params UpdateDetectionsParams) (models.Document, error)

	// Get returns {detections: [...]} ordered by name.
	Get(ctx context.Context, params GetDetectionsParams) (models.Document, error)

	// Subscribe subscribes to or unsubscribes from community detections.
	Subscribe(ctx context.Context, params SubscribeParams) (models.Document, error)

	// Share shares or unshares an organisation detection.
	Share(ctx context.Context, params ShareParams) (models.Document, error)
}

// FlaggedMessageService reads and reviews messages flagged by live
// detections.
type FlaggedMessageService interface {
	Get(ctx context.Context, params GetMessagesParams) (models.Document, error)
	Review(ctx context.Context, params ReviewMessagesParams) (models.Document, error)
	Delete(ctx context.Context, id string, permanent bool) (models.Document, error)
}

// AccountService exposes the organisation, its users and the feedback
// channel.
type AccountService interface {
	Me(ctx context.Context) (models.Document, error)
	Org(ctx context.Context) (models.Document, error)
	Users(ctx context.Context, licenseActive *bool) (models.Document, error)
	UpdateUsers(ctx context.Context, params UpdateUsersParams) (models.Document, error)
	SendMock(ctx context.Context, command string) (models.Document, error)
	Feedback(ctx context.Context, text string) (models.Document, error)
}

// BacktestService runs detections across historical messages.
type BacktestService interface {
	// Run submits a backtest job and blocks until it completes, fails or
	// ctx is cancelled.
	Run(ctx context.Context, params BacktestParams) (models.Document, error)
}

// ListenService follows the real-time event stream.
type ListenService interface {
	// Listen calls render with the current event queue after every frame
	// until ctx is cancelled or the stream fails.
	Listen(ctx context.Context, eventName string, render func([]models.Event) error) error
}
