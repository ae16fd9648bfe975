// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/internal/output"
	"github.com/sublime-security/sublime-cli/internal/service"
	"github.com/sublime-security/sublime-cli/models"
)

func (a *App) newGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get item(s) from your Sublime environment",
	}
	cmd.AddCommand(
		a.newGetDetectionsCommand(),
		a.newGetMessagesCommand(),
		a.newGetMeCommand(),
		a.newGetOrgCommand(),
		a.newGetUsersCommand(),
	)
	return cmd
}

func (a *App) newGetDetectionsCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.GetDetectionsParams
		active boolChoice
	)

	cmd := &cobra.Command{
		Use:   "detections",
		Short: "Get detections of your organization or the community",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Active = active.Ptr()
			return a.run(cmd, &flags, output.KindDetections, "Loading detections", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Detections.Get(ctx, params)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.ID, "id", "i", "", "Detection ID")
	f.StringVarP(&params.Name, "name", "n", "", "Detection name")
	f.VarP(&active, "active", "a", "Filter by active state (true, false)")
	f.StringVarP(&params.Search, "search", "s", "", "Only list detections matching this text")
	f.BoolVarP(&params.Community, "community", "c", false, "Get community detections instead of your organization's")
	return cmd
}

func (a *App) newGetMessagesCommand() *cobra.Command {
	var (
		flags    commonFlags
		params   service.GetMessagesParams
		reviewed boolChoice
		safe     boolChoice
		after    timestampFlag
		before   timestampFlag
	)

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Get flagged messages",
		Long: `List messages flagged by active detections, or show the detail view of
one message with -i. With -i and -v the raw Message Data Model is also
saved to <id>.mdm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Reviewed = reviewed.Ptr()
			params.Safe = safe.Ptr()
			params.After = after.Ptr()
			params.Before = before.Ptr()

			s, ctx, err := a.newSession(cmd, &flags)
			if err != nil {
				return err
			}
			doc, err := s.fetch(ctx, "Loading messages", func(ctx context.Context) (models.Document, error) {
				return s.services.FlaggedMessages.Get(ctx, params)
			})
			if err != nil {
				return err
			}
			if err = s.render(output.KindMessages, doc, s.options()); err != nil {
				return err
			}

			if params.ID == "" || flags.verbose == 0 {
				return nil
			}
			return s.saveRawMDM(doc)
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.ID, "id", "i", "", "Message Data Model ID")
	f.BoolVarP(&params.NotFlagged, "not", "n", false, "Invert: return not-flagged messages")
	f.Var(&reviewed, "reviewed", "Filter by review status (true, false). Defaults to false unless --safe is given")
	f.Var(&safe, "safe", "Filter by threat status (true, false)")
	f.Var(&after, "after", "Only messages after this date. Format: ISO 8601")
	f.Var(&before, "before", "Only messages before this date. Format: ISO 8601")
	return cmd
}

// saveRawMDM writes the message data model of a detail view to <id>.mdm.
func (s *session) saveRawMDM(detail models.Document) error {
	result := detail.Document("message_data_model_result")
	id := result.String("message_data_model_id")
	if id == "" {
		return nil
	}

	path := output.RawMDMPath(s.cfg.Settings.SaveDir, id)
	err := output.SaveFile(path, func(w io.Writer) error {
		return output.WriteJSON(w, result.Document(models.FieldMessageDataModel), false)
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.app.Out, "\n"+app.MsgRawMDMSaved+"\n", path)
	return err
}

func (a *App) newGetMeCommand() *cobra.Command {
	var flags commonFlags
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Describe the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, &flags, output.KindGeneric, "Loading", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Account.Me(ctx)
			})
		},
	}
	flags.register(cmd, output.FormatTXT)
	return cmd
}

func (a *App) newGetOrgCommand() *cobra.Command {
	var flags commonFlags
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Describe the current organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, &flags, output.KindGeneric, "Loading", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Account.Org(ctx)
			})
		},
	}
	flags.register(cmd, output.FormatTXT)
	return cmd
}

func (a *App) newGetUsersCommand() *cobra.Command {
	var (
		flags  commonFlags
		active boolChoice
	)
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List the users of your organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, &flags, output.KindUsers, "Loading users", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Account.Users(ctx, active.Ptr())
			})
		},
	}
	flags.register(cmd, output.FormatTXT)
	cmd.Flags().VarP(&active, "active", "a", "Filter by license state (true, false)")
	return cmd
}
