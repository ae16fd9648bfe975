// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/output"
	"github.com/sublime-security/sublime-cli/internal/service"
	"github.com/sublime-security/sublime-cli/models"
)

func (a *App) newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update item(s) in your Sublime environment",
	}
	cmd.AddCommand(
		a.newUpdateDetectionsCommand(),
		a.newUpdateMessagesCommand(),
		a.newUpdateUsersCommand(),
	)
	return cmd
}

func (a *App) newUpdateDetectionsCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.UpdateDetectionsParams
		active boolChoice
	)

	cmd := &cobra.Command{
		Use:   "detections",
		Short: "Update detections by file, ID or name",
		Long: `Update every detection of a PQL file or directory by name (-D), or a
single detection by ID (-i) or name (-n). With -i, -n renames the detection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Active = active.Ptr()
			return a.run(cmd, &flags, output.KindUpdateDetections, "Updating detections", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Detections.Update(ctx, params)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.DetectionsPath, "detections", "D", "", "Detections file or directory")
	f.StringVarP(&params.ID, "id", "i", "", "Update using detection ID")
	f.StringVarP(&params.RawDetection, "detection", "d", "", "Raw detection, surrounded by single quotes")
	f.StringVarP(&params.Name, "name", "n", "", "Update using detection name, or the new name when -i is given")
	f.VarP(&active, "active", "a", "Enable or disable the detection for live flow (true, false)")
	return cmd
}

func (a *App) newUpdateMessagesCommand() *cobra.Command {
	var (
		flags    commonFlags
		params   service.ReviewMessagesParams
		reviewed boolChoice
		safe     boolChoice
		after    timestampFlag
		before   timestampFlag
	)

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Update the review and threat status of flagged messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Reviewed = reviewed.value
			params.Safe = safe.value
			params.After = after.Ptr()
			params.Before = before.Ptr()
			return a.run(cmd, &flags, output.KindGeneric, "", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.FlaggedMessages.Review(ctx, params)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.ID, "id", "i", "", "Message Data Model ID to update")
	f.Var(&reviewed, "reviewed", "Review status (true, false)")
	f.Var(&safe, "safe", "Whether the message is safe (true, false)")
	f.BoolVar(&params.All, "all", false, "Update every flagged, unreviewed message within the timeframe")
	f.Var(&after, "after", "For --all, only update messages after this date. Format: ISO 8601")
	f.Var(&before, "before", "For --all, only update messages before this date. Format: ISO 8601")
	_ = cmd.MarkFlagRequired("reviewed")
	_ = cmd.MarkFlagRequired("safe")
	return cmd
}

func (a *App) newUpdateUsersCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.UpdateUsersParams
		active boolChoice
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Activate or deactivate user licenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.LicenseActive = active.value
			return a.run(cmd, &flags, output.KindOutcome, "", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Account.UpdateUsers(ctx, params)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.Email, "user", "u", "", "Email address of the user to update")
	f.BoolVar(&params.All, "all", false, "Update every user at once")
	f.VarP(&active, "active", "a", "Activate or deactivate the license for live flow (true, false)")
	_ = cmd.MarkFlagRequired("active")
	return cmd
}
