// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/internal/config"
	"github.com/sublime-security/sublime-cli/internal/logger"
	"github.com/sublime-security/sublime-cli/internal/output"
	"github.com/sublime-security/sublime-cli/internal/service"
	"github.com/sublime-security/sublime-cli/internal/tui"
	"github.com/sublime-security/sublime-cli/internal/utils"
	"github.com/sublime-security/sublime-cli/models"
)

// session is everything a single command run needs.
type session struct {
	app      *App
	flags    *commonFlags
	format   output.Format
	cfg      *config.Config
	log      *logger.Logger
	services *service.Services
}

// newSession resolves the configuration for cmd and wires the services.
func (a *App) newSession(cmd *cobra.Command, flags *commonFlags) (*session, context.Context, error) {
	format, err := flags.parseFormat()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(config.Overrides{APIKey: flags.apiKey})
	if err != nil {
		return nil, nil, err
	}
	if cfg.Settings.APIKey == "" {
		return nil, nil, ErrAPIKeyNotFound
	}

	log := logger.NewCLILogger(a.Err, cfg.Log.Level, !utils.IsTerminal(a.Err))

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.API, cfg.Settings.APIKey, a.BuildInfo, log)
	if err != nil {
		return nil, nil, err
	}
	listener := adapter.NewWebsocketListener(cfg.API, cfg.Settings.APIKey, log)

	confirmer := tui.Confirmer{In: a.In, Out: a.Err, AssumeYes: flags.yes}

	s := &session{
		app:      a,
		flags:    flags,
		format:   format,
		cfg:      cfg,
		log:      log,
		services: service.NewServices(cfg, serverAdapter, listener, confirmer),
	}

	ctx := log.WithContext(cmd.Context())
	log.Debug().Str("command", cmd.CommandPath()).Msg("running command")
	return s, ctx, nil
}

func (s *session) options() output.Options {
	return output.Options{
		Verbose:   s.flags.verbose > 0,
		Highlight: s.flags.output == "" && utils.IsTerminal(s.app.Out),
	}
}

// fetch runs call behind a spinner on stderr.
func (s *session) fetch(ctx context.Context, label string, call func(context.Context) (models.Document, error)) (models.Document, error) {
	var doc models.Document
	err := tui.RunWithSpinner(ctx, s.app.Err, label, func(ctx context.Context) error {
		var err error
		doc, err = call(ctx)
		return err
	})
	return doc, err
}

// render writes doc to the -o file when given, else to stdout.
func (s *session) render(kind output.Kind, doc models.Document, opts output.Options) error {
	if s.flags.output == "" {
		return output.Render(s.app.Out, s.format, kind, doc, opts)
	}
	return s.save(s.flags.output, kind, doc, opts)
}

func (s *session) save(path string, kind output.Kind, doc models.Document, opts output.Options) error {
	opts.Highlight = false
	err := output.SaveFile(path, func(w io.Writer) error {
		return output.Render(w, s.format, kind, doc, opts)
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.app.Out, app.MsgOutputSaved+"\n", path)
	return err
}

// run is the common body of commands that fetch one document and render it.
func (a *App) run(
	cmd *cobra.Command,
	flags *commonFlags,
	kind output.Kind,
	label string,
	call func(ctx context.Context, s *session) (models.Document, error),
) error {
	s, ctx, err := a.newSession(cmd, flags)
	if err != nil {
		return err
	}

	var doc models.Document
	if label == "" {
		doc, err = call(ctx, s)
	} else {
		doc, err = s.fetch(ctx, label, func(ctx context.Context) (models.Document, error) {
			return call(ctx, s)
		})
	}
	if err != nil {
		return err
	}
	return s.render(kind, doc, s.options())
}
