// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/config"
)

// Services bundles every service used by the command layer.
type Services struct {
	Permission      PermissionService
	Messages        MessageService
	Detections      DetectionService
	FlaggedMessages FlaggedMessageService
	Account         AccountService
	Backtest        BacktestService
	Listen          ListenService
}

// NewServices wires the services over a single adapter. listener may be nil
// for commands that never stream.
func NewServices(
	cfg *config.Config,
	serverAdapter adapter.ServerAdapter,
	listener adapter.EventListener,
	confirmer Confirmer,
) *Services {
	permissionSvc := NewPermissionService(cfg, confirmer)

	return &Services{
		Permission:      permissionSvc,
		Messages:        NewMessageService(serverAdapter, permissionSvc),
		Detections:      NewDetectionService(serverAdapter, confirmer),
		FlaggedMessages: NewFlaggedMessageService(serverAdapter, confirmer),
		Account:         NewAccountService(serverAdapter, confirmer),
		Backtest:        NewBacktestService(serverAdapter, DefaultPollInterval),
		Listen:          NewListenService(listener),
	}
}
