// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sublime-security/sublime-cli/internal/mock"
	"github.com/sublime-security/sublime-cli/models"
)

func TestListenService_RendersQueueAfterEveryFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockEventListener(ctrl)
	svc := NewListenService(listener)
	ctx := context.Background()

	listener.EXPECT().Listen(ctx, "flagged-messages", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, handle func(models.Event) error) error {
			for _, e := range []models.Event{flagged("1"), flagged("2"), reviewed("1")} {
				if err := handle(e); err != nil {
					return err
				}
			}
			return nil
		},
	)

	var sizes []int
	err := svc.Listen(ctx, "flagged-messages", func(events []models.Event) error {
		sizes = append(sizes, len(events))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, sizes)
}

func TestListenService_RenderErrorStopsStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockEventListener(ctrl)
	svc := NewListenService(listener)
	ctx := context.Background()

	renderErr := errors.New("broken pipe")
	listener.EXPECT().Listen(ctx, "e", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, handle func(models.Event) error) error {
			return handle(flagged("1"))
		},
	)

	err := svc.Listen(ctx, "e", func([]models.Event) error { return renderErr })
	assert.ErrorIs(t, err, renderErr)
}

func TestListenService_NoListener(t *testing.T) {
	err := NewListenService(nil).Listen(context.Background(), "e", nil)
	assert.ErrorIs(t, err, ErrNoListener)
}
