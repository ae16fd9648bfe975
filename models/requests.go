// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResponseTypeFull asks the API to include every field of each result.
const ResponseTypeFull = "full"

// MessageRequest submits a raw, base64-encoded message for enrichment or
// message data model creation.
type MessageRequest struct {
	Message             string    `json:"message"`
	MailboxEmailAddress *string   `json:"mailbox_email_address"`
	RouteType           RouteType `json:"route_type,omitempty"`
}

// AnalyzeMessageRequest evaluates detections against a raw message. Exactly
// one of Detection and Detections is set.
type AnalyzeMessageRequest struct {
	Message             string      `json:"message"`
	Detection           *Detection  `json:"detection,omitempty"`
	Detections          []Detection `json:"detections,omitempty"`
	MailboxEmailAddress *string     `json:"mailbox_email_address"`
	RouteType           RouteType   `json:"route_type,omitempty"`
	ResponseType        string      `json:"response_type,omitempty"`
}

// AnalyzeModelRequest evaluates detections against an enriched message data
// model. Exactly one of Detection and Detections is set.
type AnalyzeModelRequest struct {
	MessageDataModel Document    `json:"message_data_model"`
	Detection        *Detection  `json:"detection,omitempty"`
	Detections       []Detection `json:"detections,omitempty"`
	ResponseType     string      `json:"response_type,omitempty"`
}

// QueryModelRequest evaluates queries against an enriched message data
// model. Exactly one of Query and Queries is set.
type QueryModelRequest struct {
	MessageDataModel Document `json:"message_data_model"`
	Query            *Query   `json:"query,omitempty"`
	Queries          []Query  `json:"queries,omitempty"`
	ResponseType     string   `json:"response_type,omitempty"`
}

// CreateDetectionRequest stores a detection in the organisation.
type CreateDetectionRequest struct {
	Name         string `json:"name,omitempty"`
	Detection    string `json:"detection,omitempty"`
	Active       bool   `json:"active"`
	ResponseType string `json:"response_type,omitempty"`
}

// UpdateDetectionRequest patches an organisation detection. Every set field
// overwrites the stored value, so unset fields must stay nil.
type UpdateDetectionRequest struct {
	Name      *string `json:"name,omitempty"`
	Detection *string `json:"detection,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// DetectionFilter narrows detection listings.
type DetectionFilter struct {
	Active                 *bool
	Search                 string
	CreatedByOrgID         string
	CreatedBySublimeUserID string
}

// ShareRequest controls which identity is disclosed when a detection is
// shared with the community.
type ShareRequest struct {
	ShareSublimeUser bool `json:"share_sublime_user"`
	ShareOrg         bool `json:"share_org"`
}

// SubscribeRequest sets the state of a community detection after
// subscribing to it.
type SubscribeRequest struct {
	Active bool `json:"active"`
}

// FlaggedMessagesFilter narrows the flagged messages listing.
type FlaggedMessagesFilter struct {
	Result   bool
	After    *Timestamp
	Before   *Timestamp
	Reviewed *bool
	Safe     *bool
}

// ReviewRequest sets the review and threat status of a single message.
type ReviewRequest struct {
	Reviewed bool `json:"reviewed"`
	Safe     bool `json:"safe"`
}

// ReviewAllRequest sets the review and threat status of every flagged,
// unreviewed message in the time window.
type ReviewAllRequest struct {
	After     *Timestamp `json:"start_time"`
	Before    *Timestamp `json:"end_time"`
	Inclusive bool       `json:"inclusive"`
	Reviewed  bool       `json:"reviewed"`
	Safe      bool       `json:"safe"`
}

// BacktestRequest runs detections across historical messages.
type BacktestRequest struct {
	After      *Timestamp  `json:"start_time"`
	Before     *Timestamp  `json:"end_time"`
	Inclusive  bool        `json:"inclusive"`
	Detections []Detection `json:"detections"`
}

// LicenseRequest activates or deactivates a user's license.
type LicenseRequest struct {
	LicenseActive bool `json:"license_active"`
}

// FeedbackRequest carries free-form feedback to the API team.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}
