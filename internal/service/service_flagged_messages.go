// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/models"
)

type flaggedMessageService struct {
	adapter   adapter.ServerAdapter
	confirmer Confirmer
}

// NewFlaggedMessageService returns a FlaggedMessageService. confirmer is
// asked before reviewing every flagged message at once.
func NewFlaggedMessageService(serverAdapter adapter.ServerAdapter, confirmer Confirmer) FlaggedMessageService {
	return &flaggedMessageService{adapter: serverAdapter, confirmer: confirmer}
}

// Get returns the detail view of params.ID, or the flagged message listing.
// Without explicit filters only unreviewed messages are listed; filtering by
// safety alone lists reviewed ones.
func (s *flaggedMessageService) Get(ctx context.Context, params GetMessagesParams) (models.Document, error) {
	if params.ID != "" {
		return s.adapter.GetFlaggedMessageDetail(ctx, params.ID)
	}

	reviewed := params.Reviewed
	if reviewed == nil {
		v := params.Safe != nil
		reviewed = &v
	}

	return s.adapter.GetFlaggedMessages(ctx, models.FlaggedMessagesFilter{
		Result:   !params.NotFlagged,
		After:    params.After,
		Before:   params.Before,
		Reviewed: reviewed,
		Safe:     params.Safe,
	})
}

func (s *flaggedMessageService) Review(ctx context.Context, params ReviewMessagesParams) (models.Document, error) {
	if !params.All {
		if params.ID == "" {
			return nil, ErrMessageIDRequired
		}
		return s.adapter.ReviewMessage(ctx, params.ID, models.ReviewRequest{
			Reviewed: params.Reviewed,
			Safe:     params.Safe,
		})
	}

	unreviewed := false
	pending, err := s.adapter.GetFlaggedMessages(ctx, models.FlaggedMessagesFilter{
		Result:   true,
		After:    params.After,
		Before:   params.Before,
		Reviewed: &unreviewed,
	})
	if err != nil {
		return nil, err
	}

	count := len(listOf(pending, models.FieldResults))
	if count == 0 {
		return nil, ErrNothingToUpdate
	}
	if err = confirm(ctx, s.confirmer, fmt.Sprintf(app.MsgConfirmReviewAll, count)); err != nil {
		return nil, err
	}

	return s.adapter.ReviewAllMessages(ctx, models.ReviewAllRequest{
		After:    params.After,
		Before:   params.Before,
		Reviewed: params.Reviewed,
		Safe:     params.Safe,
	})
}

func (s *flaggedMessageService) Delete(ctx context.Context, id string, permanent bool) (models.Document, error) {
	if id == "" {
		return nil, ErrMessageIDRequired
	}

	doc, err := s.adapter.DeleteMessage(ctx, id, permanent)
	if err != nil {
		return nil, err
	}
	return wrapList(models.FieldResults, doc), nil
}
