// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Sublime analysis API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. [NewHTTPServerAdapter] implements it over
// HTTP/REST; [NewWebsocketListener] implements [EventListener] over the
// real-time stream used by `sublime listen`.
//
// Failed responses are mapped to [*APIError] so that callers can use
// [errors.Is] against [ErrInvalidRequest], [ErrRateLimit] and [ErrAPI].
package adapter

import (
	"context"

	"github.com/sublime-security/sublime-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines one method per API endpoint. Every method returns
// the decoded response body; a 204 response yields a nil [models.Document].
type ServerAdapter interface {
	// EnrichMessage creates a message data model from a raw message and runs
	// every enrichment function on it.
	EnrichMessage(ctx context.Context, req models.MessageRequest) (models.Document, error)

	// CreateMessageDataModel creates an unenriched message data model.
	CreateMessageDataModel(ctx context.Context, req models.MessageRequest) (models.Document, error)

	// AnalyzeMessage evaluates a single detection against a raw message.
	AnalyzeMessage(ctx context.Context, req models.AnalyzeMessageRequest) (models.Document, error)

	// AnalyzeMessageMulti evaluates several detections against a raw message.
	AnalyzeMessageMulti(ctx context.Context, req models.AnalyzeMessageRequest) (models.Document, error)

	// AnalyzeModel evaluates a single detection against a message data model.
	AnalyzeModel(ctx context.Context, req models.AnalyzeModelRequest) (models.Document, error)

	// AnalyzeModelMulti evaluates several detections against a message data
	// model.
	AnalyzeModelMulti(ctx context.Context, req models.AnalyzeModelRequest) (models.Document, error)

	// QueryModel runs a single query against a message data model.
	QueryModel(ctx context.Context, req models.QueryModelRequest) (models.Document, error)

	// QueryModelMulti runs several queries against a message data model.
	QueryModelMulti(ctx context.Context, req models.QueryModelRequest) (models.Document, error)

	// CreateOrgDetection stores a new detection in the organisation.
	CreateOrgDetection(ctx context.Context, req models.CreateDetectionRequest) (models.Document, error)

	// UpdateOrgDetection patches the organisation detection with the given id.
	UpdateOrgDetection(ctx context.Context, id string, req models.UpdateDetectionRequest) (models.Document, error)

	// UpdateOrgDetectionByName patches the organisation detection with the
	// given name. req.Name is ignored.
	UpdateOrgDetectionByName(ctx context.Context, name string, req models.UpdateDetectionRequest) (models.Document, error)

	// GetOrgDetections lists organisation detections.
	GetOrgDetections(ctx context.Context, filter models.DetectionFilter) (models.Document, error)

	// GetOrgDetection fetches an organisation detection by id.
	GetOrgDetection(ctx context.Context, id string) (models.Document, error)

	// GetOrgDetectionByName fetches an organisation detection by name.
	GetOrgDetectionByName(ctx context.Context, name string) (models.Document, error)

	// ShareOrgDetection publishes an organisation detection to the community.
	ShareOrgDetection(ctx context.Context, id string, req models.ShareRequest) (models.Document, error)

	// UnshareOrgDetection withdraws a shared detection from the community.
	UnshareOrgDetection(ctx context.Context, id string) (models.Document, error)

	// GetCommunityDetections lists community detections.
	GetCommunityDetections(ctx context.Context, filter models.DetectionFilter) (models.Document, error)

	// GetCommunityDetection fetches a community detection by id.
	GetCommunityDetection(ctx context.Context, id string) (models.Document, error)

	// GetCommunityDetectionByName fetches a community detection by name.
	GetCommunityDetectionByName(ctx context.Context, name string) (models.Document, error)

	// SubscribeCommunityDetection copies a community detection into the
	// organisation and sets its active state.
	SubscribeCommunityDetection(ctx context.Context, id string, req models.SubscribeRequest) (models.Document, error)

	// UnsubscribeCommunityDetection removes a subscription.
	UnsubscribeCommunityDetection(ctx context.Context, id string) (models.Document, error)

	// GetFlaggedMessages lists messages flagged by active detections.
	GetFlaggedMessages(ctx context.Context, filter models.FlaggedMessagesFilter) (models.Document, error)

	// GetFlaggedMessageDetail returns the detail view of a flagged message.
	GetFlaggedMessageDetail(ctx context.Context, id string) (models.Document, error)

	// ReviewMessage sets the review status of a single message.
	ReviewMessage(ctx context.Context, id string, req models.ReviewRequest) (models.Document, error)

	// ReviewAllMessages sets the review status of every matching message.
	ReviewAllMessages(ctx context.Context, req models.ReviewAllRequest) (models.Document, error)

	// DeleteMessage deletes the external copy of a message.
	DeleteMessage(ctx context.Context, id string, permanent bool) (models.Document, error)

	// GetMe describes the authenticated user.
	GetMe(ctx context.Context) (models.Document, error)

	// GetOrg describes the authenticated organisation.
	GetOrg(ctx context.Context) (models.Document, error)

	// GetUsers lists organisation users, optionally filtered by license state.
	GetUsers(ctx context.Context, licenseActive *bool) (models.Document, error)

	// UpdateUserLicense activates or deactivates a user's license.
	UpdateUserLicense(ctx context.Context, email string, req models.LicenseRequest) (models.Document, error)

	// BacktestDetections submits a backtest job and returns its descriptor.
	BacktestDetections(ctx context.Context, req models.BacktestRequest) (models.Document, error)

	// GetJobStatus returns the status of an asynchronous job.
	GetJobStatus(ctx context.Context, id string) (models.Document, error)

	// GetJobOutput returns the output of a finished job.
	GetJobOutput(ctx context.Context, id string) (models.Document, error)

	// SendMockTutorialOne asks the API to deliver the first tutorial message.
	SendMockTutorialOne(ctx context.Context) (models.Document, error)

	// SendFeedback forwards free-form feedback.
	SendFeedback(ctx context.Context, req models.FeedbackRequest) (models.Document, error)
}

// EventListener streams real-time events.
type EventListener interface {
	// Listen subscribes to eventName and calls handle for every frame until
	// ctx is cancelled, the stream fails, or handle returns an error.
	// Cancellation is not an error.
	Listen(ctx context.Context, eventName string, handle func(models.Event) error) error
}
