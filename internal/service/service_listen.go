// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/logger"
	"github.com/sublime-security/sublime-cli/models"
)

// ErrNoListener is returned by Listen when no stream listener was wired.
var ErrNoListener = errors.New("event listener is not configured")

type listenService struct {
	listener adapter.EventListener
}

// NewListenService returns a ListenService backed by listener.
func NewListenService(listener adapter.EventListener) ListenService {
	return &listenService{listener: listener}
}

func (s *listenService) Listen(ctx context.Context, eventName string, render func([]models.Event) error) error {
	if s.listener == nil {
		return ErrNoListener
	}

	log := logger.FromContext(ctx)
	queue := &EventQueue{}

	return s.listener.Listen(ctx, eventName, func(e models.Event) error {
		log.Debug().Str("event", e.Name()).Str("message_data_model_id", e.MessageDataModelID()).Msg("event received")

		queue.Push(e)
		return render(queue.Events())
	})
}
