// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/sublime-security/sublime-cli/models"
)

// EventQueue keeps listen events in arrival order. A
// flagged-messages-reviewed event is not queued; it removes the queued
// events of the same message data model instead.
type EventQueue struct {
	mu     sync.Mutex
	events []models.Event
}

// Push applies e to the queue.
func (q *EventQueue) Push(e models.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if e.Name() != models.EventFlaggedMessagesReviewed {
		q.events = append(q.events, e)
		return
	}

	id := e.MessageDataModelID()
	kept := q.events[:0]
	for _, queued := range q.events {
		if queued.Document != nil && queued.MessageDataModelID() == id {
			continue
		}
		kept = append(kept, queued)
	}
	clear(q.events[len(kept):])
	q.events = kept
}

// Events returns a snapshot of the queue.
func (q *EventQueue) Events() []models.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.Event, len(q.events))
	copy(out, q.events)
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
