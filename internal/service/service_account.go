// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/models"
)

// MockTutorialOne is the only mock message the API can send.
const MockTutorialOne = "tutorial-one"

type accountService struct {
	adapter   adapter.ServerAdapter
	confirmer Confirmer
}

// NewAccountService returns an AccountService. confirmer is asked before
// updating every user of the organisation.
func NewAccountService(serverAdapter adapter.ServerAdapter, confirmer Confirmer) AccountService {
	return &accountService{adapter: serverAdapter, confirmer: confirmer}
}

func (s *accountService) Me(ctx context.Context) (models.Document, error) {
	return s.adapter.GetMe(ctx)
}

func (s *accountService) Org(ctx context.Context) (models.Document, error) {
	return s.adapter.GetOrg(ctx)
}

func (s *accountService) Users(ctx context.Context, licenseActive *bool) (models.Document, error) {
	return s.adapter.GetUsers(ctx, licenseActive)
}

func (s *accountService) UpdateUsers(ctx context.Context, params UpdateUsersParams) (models.Document, error) {
	req := models.LicenseRequest{LicenseActive: params.LicenseActive}
	var out outcome

	if !params.All {
		if params.Email == "" {
			return nil, ErrUserTargetRequired
		}
		doc, err := s.adapter.UpdateUserLicense(ctx, params.Email, req)
		if err != nil {
			return nil, err
		}
		out.add(params.Email, doc, nil)
		return out.document("email_address"), nil
	}

	listed, err := s.adapter.GetUsers(ctx, nil)
	if err != nil {
		return nil, err
	}

	users := listOf(listed, "users")
	if len(users) == 0 {
		return nil, ErrNoUsersToUpdate
	}
	if err = confirm(ctx, s.confirmer, fmt.Sprintf(app.MsgConfirmUpdateUsers, len(users))); err != nil {
		return nil, err
	}

	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		email := u.String("email_address")
		doc, err := s.adapter.UpdateUserLicense(ctx, email, req)
		out.add(email, doc, err)
	}
	return out.document("email_address"), nil
}

func (s *accountService) SendMock(ctx context.Context, command string) (models.Document, error) {
	if command != MockTutorialOne {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMockCommand, command)
	}
	return s.adapter.SendMockTutorialOne(ctx)
}

func (s *accountService) Feedback(ctx context.Context, text string) (models.Document, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyFeedback
	}
	return s.adapter.SendFeedback(ctx, models.FeedbackRequest{Feedback: text})
}
