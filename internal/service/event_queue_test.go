// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublime-security/sublime-cli/models"
)

func flagged(id string) models.Event {
	return models.Event{Document: models.Document{"event_name": "flagged-messages", "message_data_model_id": id}}
}

func reviewed(id string) models.Event {
	return models.Event{Document: models.Document{
		"event_name":            models.EventFlaggedMessagesReviewed,
		"message_data_model_id": id,
	}}
}

func TestEventQueue_KeepsArrivalOrder(t *testing.T) {
	var q EventQueue
	q.Push(flagged("1"))
	q.Push(models.Event{Raw: "ping"})
	q.Push(flagged("2"))

	events := q.Events()
	assert.Len(t, events, 3)
	assert.Equal(t, "1", events[0].MessageDataModelID())
	assert.Equal(t, "ping", events[1].Raw)
	assert.Equal(t, "2", events[2].MessageDataModelID())
}

func TestEventQueue_ReviewedRemovesMatching(t *testing.T) {
	var q EventQueue
	q.Push(flagged("1"))
	q.Push(flagged("2"))
	q.Push(models.Event{Raw: "ping"})
	q.Push(flagged("1"))

	q.Push(reviewed("1"))

	events := q.Events()
	assert.Len(t, events, 2)
	assert.Equal(t, "2", events[0].MessageDataModelID())
	assert.Equal(t, "ping", events[1].Raw)
}

func TestEventQueue_ReviewedUnknownIsDropped(t *testing.T) {
	var q EventQueue
	q.Push(flagged("1"))
	q.Push(reviewed("9"))

	assert.Equal(t, 1, q.Len())
}

func TestEventQueue_EventsIsSnapshot(t *testing.T) {
	var q EventQueue
	q.Push(flagged("1"))

	snapshot := q.Events()
	q.Push(reviewed("1"))

	assert.Len(t, snapshot, 1)
	assert.Zero(t, q.Len())
}
