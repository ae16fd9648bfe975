// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/output"
	"github.com/sublime-security/sublime-cli/models"
)

func (a *App) newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete item(s) from your Sublime environment",
	}
	cmd.AddCommand(a.newDeleteMessagesCommand())
	return cmd
}

func (a *App) newDeleteMessagesCommand() *cobra.Command {
	var (
		flags     commonFlags
		id        string
		permanent bool
	)

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Delete the external copy of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, &flags, output.KindGeneric, "Deleting", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.FlaggedMessages.Delete(ctx, id, permanent)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&id, "message-data-model-id", "i", "", "Message Data Model ID")
	f.BoolVarP(&permanent, "permanent", "p", false, "Delete permanently instead of moving to trash")
	return cmd
}

func (a *App) newSendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send item(s) to your Sublime environment",
	}
	cmd.AddCommand(a.newSendMockCommand())
	return cmd
}

func (a *App) newSendMockCommand() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "mock COMMAND",
		Short: "Send a mock message (tutorial-one)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, &flags, output.KindGeneric, "Sending", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Account.SendMock(ctx, args[0])
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	return cmd
}

func (a *App) newFeedbackCommand() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "feedback TEXT...",
		Short: "Send feedback to the Sublime team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return a.run(cmd, &flags, output.KindGeneric, "Sending feedback", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Account.Feedback(ctx, text)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	return cmd
}
