// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/internal/config"
	"github.com/sublime-security/sublime-cli/internal/logger"
)

// Commands that upload message content. CommandAnalyze selects the analyze
// wording of the privacy notice.
const (
	CommandAnalyze  = "analyze"
	CommandEnrich   = "enrich"
	CommandGenerate = "generate"
)

type permissionService struct {
	cfg       *config.Config
	confirmer Confirmer

	mu sync.Mutex
}

// NewPermissionService returns a PermissionService that persists acceptance
// to cfg.SettingsPath.
func NewPermissionService(cfg *config.Config, confirmer Confirmer) PermissionService {
	return &permissionService{cfg: cfg, confirmer: confirmer}
}

func (s *permissionService) Request(ctx context.Context, command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Settings.Permission {
		return nil
	}

	notice := app.MsgPrivacyNotice
	if command == CommandAnalyze {
		notice = app.MsgPrivacyNoticeAnalyze
	}

	ok, err := s.confirmer.Confirm(ctx, notice)
	if err != nil {
		return fmt.Errorf("error reading privacy confirmation: %w", err)
	}
	if !ok {
		return ErrPermissionDenied
	}

	s.cfg.Settings.Permission = true
	if _, err = config.SaveSettings(s.cfg.SettingsPath, config.Settings{Permission: true}); err != nil {
		// acceptance still holds for this run
		logger.FromContext(ctx).Warn().Err(err).Msg("could not persist privacy acceptance")
	}
	return nil
}
