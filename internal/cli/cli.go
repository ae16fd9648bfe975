// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli builds the sublime command tree on top of the service layer.
//
// Every command resolves its configuration, builds a logger, the API
// adapter and the services, runs with the caller's context and routes the
// result through the output package. Failures are reported on stderr and
// mapped to exit code 1 by [App.Execute].
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/internal/logger"
	"github.com/sublime-security/sublime-cli/internal/service"
	"github.com/sublime-security/sublime-cli/internal/tui"
	"github.com/sublime-security/sublime-cli/internal/utils"
	"github.com/sublime-security/sublime-cli/models"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// App holds the process streams and build metadata shared by every command.
type App struct {
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	BuildInfo models.AppBuildInfo

	// interactive is false inside the REPL, where nested REPLs are refused.
	interactive bool
}

// NewApp returns an App bound to the process standard streams.
func NewApp(buildInfo models.AppBuildInfo) *App {
	return &App{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		BuildInfo:   buildInfo,
		interactive: true,
	}
}

// Execute runs the command line args and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.NewRootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		a.reportError(err)
		return ExitFailure
	}
	return ExitOK
}

// NewRootCommand returns a fresh command tree writing to the App streams.
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sublime",
		Short: "Sublime Security command line client",
		Long: `sublime analyzes email messages with the Sublime Security API.

Messages can be enriched into a Message Data Model, analyzed against
detections and queried. Detections, flagged messages and users of your
organization can be listed and updated.

Example:
  sublime setup -k <api key>
  sublime analyze -i message.eml -d 'type.inbound'
  sublime enrich -i message.eml
  sublime get detections -a true`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	root.AddCommand(
		a.newAnalyzeCommand(),
		a.newEnrichCommand(),
		a.newGenerateCommand(),
		a.newQueryCommand(),
		a.newListenCommand(),
		a.newFeedbackCommand(),
		a.newSetupCommand(),
		a.newVersionCommand(),
		a.newGetCommand(),
		a.newCreateCommand(),
		a.newUpdateCommand(),
		a.newDeleteCommand(),
		a.newSubscribeCommand(),
		a.newShareCommand(),
		a.newBacktestCommand(),
		a.newSendCommand(),
		a.newREPLCommand(),
	)
	return root
}

func (a *App) reportError(err error) {
	log := logger.NewCLILogger(a.Err, "error", !utils.IsTerminal(a.Err))

	var apiErr *adapter.APIError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, service.ErrPermissionDenied),
		errors.Is(err, tui.ErrAborted):
		log.Error().Msg(app.MsgAborted)
	case errors.As(err, &apiErr):
		log.Error().Int("status_code", apiErr.StatusCode).Msg("API error: " + apiErr.Error())
	case errors.Is(err, adapter.ErrTransport):
		log.Error().Msg("API error: " + err.Error())
	case errors.Is(err, service.ErrJobFailed):
		log.Error().Msg("Job error: " + err.Error())
	case errors.Is(err, adapter.ErrWebSocket):
		log.Error().Msg("WebSocket error: " + err.Error())
	default:
		log.Error().Msg(err.Error())
	}
}
