// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/output"
	"github.com/sublime-security/sublime-cli/internal/service"
	"github.com/sublime-security/sublime-cli/models"
)

func (a *App) newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create item(s) in your Sublime environment",
	}
	cmd.AddCommand(a.newCreateDetectionsCommand())
	return cmd
}

func (a *App) newCreateDetectionsCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.CreateDetectionsParams
		active boolChoice
	)

	cmd := &cobra.Command{
		Use:   "detections",
		Short: "Create detections from a PQL file or directory, or a raw detection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Active = active.value
			params.Verbose = flags.verbose > 0
			return a.run(cmd, &flags, output.KindCreateDetections, "Creating detections", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Detections.Create(ctx, params)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.DetectionsPath, "detections", "D", "", "Detections file or directory")
	f.StringVarP(&params.RawDetection, "detection", "d", "", "Raw detection, surrounded by single quotes")
	f.StringVarP(&params.Name, "name", "n", "", "Name of the raw detection")
	f.VarP(&active, "active", "a", "Enable the detections for live flow (true, false)")
	return cmd
}

func (a *App) newSubscribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe to community item(s)",
	}
	cmd.AddCommand(a.newSubscribeDetectionsCommand())
	return cmd
}

func (a *App) newSubscribeDetectionsCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.SubscribeParams
		active boolChoice
	)

	cmd := &cobra.Command{
		Use:   "detections",
		Short: "Subscribe to community detections by ID or author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Active = active.value
			return a.run(cmd, &flags, output.KindOutcome, "", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Detections.Subscribe(ctx, params)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.ID, "id", "i", "", "Detection ID")
	f.StringVar(&params.CreatedByOrg, "org-id", "", "Every detection authored by this org ID")
	f.StringVar(&params.CreatedByUser, "sublime-user-id", "", "Every detection authored by this Sublime user ID")
	f.VarP(&active, "active", "a", "State of the detections after subscribing (true, false)")
	f.BoolVarP(&params.Unsubscribe, "unsubscribe", "u", false, "Unsubscribe instead")
	return cmd
}

func (a *App) newShareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share item(s) with the community",
	}
	cmd.AddCommand(a.newShareDetectionsCommand())
	return cmd
}

func (a *App) newShareDetectionsCommand() *cobra.Command {
	var (
		flags     commonFlags
		params    service.ShareParams
		shareName boolChoice
		shareOrg  boolChoice
	)

	cmd := &cobra.Command{
		Use:   "detections",
		Short: "Share or unshare an organization detection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.ShareName = shareName.value
			params.ShareOrg = shareOrg.value
			return a.run(cmd, &flags, output.KindGeneric, "", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Detections.Share(ctx, params)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.ID, "id", "i", "", "Detection ID to share")
	f.Var(&shareName, "share-name", "Share your name with the community (true, false)")
	f.Var(&shareOrg, "share-org", "Share your org name with the community (true, false)")
	f.BoolVarP(&params.Unshare, "unshare", "u", false, "Unshare the detection")
	return cmd
}

func (a *App) newBacktestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Backtest item(s) against historical messages",
	}
	cmd.AddCommand(a.newBacktestDetectionsCommand())
	return cmd
}

func (a *App) newBacktestDetectionsCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.BacktestParams
		after  timestampFlag
		before timestampFlag
	)

	cmd := &cobra.Command{
		Use:   "detections",
		Short: "Backtest detections and wait for the job to finish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.After = after.Ptr()
			params.Before = before.Ptr()
			params.Progress = func(line string) {
				fmt.Fprintln(a.Err, line)
			}
			return a.run(cmd, &flags, output.KindGeneric, "", func(ctx context.Context, s *session) (models.Document, error) {
				return s.services.Backtest.Run(ctx, params)
			})
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.DetectionsPath, "detections", "D", "", "Detections file or directory")
	f.StringVarP(&params.RawDetection, "detection", "d", "", "Raw detection, surrounded by single quotes")
	f.StringVarP(&params.Name, "name", "n", "", "Name of the raw detection")
	f.Var(&after, "after", "Only backtest messages after this date. Format: ISO 8601")
	f.Var(&before, "before", "Only backtest messages before this date. Format: ISO 8601")
	return cmd
}
