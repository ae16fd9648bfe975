// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field names shared by result documents.
const (
	FieldResults          = "results"
	FieldResult           = "result"
	FieldDetections       = "detections"
	FieldMessageDataModel = "message_data_model"
	FieldDetails          = "details"

	// FieldMessageKey tags mailbox analyze results with the subject key of
	// the message they belong to.
	FieldMessageKey = "message_key"
)
