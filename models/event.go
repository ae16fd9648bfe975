// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventFlaggedMessagesReviewed is emitted when a previously flagged message
// has been reviewed and should disappear from the live view.
const EventFlaggedMessagesReviewed = "flagged-messages-reviewed"

// Event is a single frame received from the real-time listen stream.
// Frames that are JSON objects populate Document; anything else is kept
// verbatim in Raw.
type Event struct {
	Document Document
	Raw      string
}

// Name returns the event_name of an object frame.
func (e Event) Name() string {
	if e.Document == nil {
		return ""
	}
	return e.Document.String("event_name")
}

// MessageDataModelID returns the message_data_model_id of an object frame.
func (e Event) MessageDataModelID() string {
	if e.Document == nil {
		return ""
	}
	return e.Document.String("message_data_model_id")
}
