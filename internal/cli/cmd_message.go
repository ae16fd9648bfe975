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

const routeTypeUsage = "Set the message type (inbound, internal, outbound)"

func (a *App) newAnalyzeCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.AnalyzeParams
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a message or MDM against detections",
		Long: `Analyze an EML, MSG or MBOX file, or an enriched MDM, with a raw
detection (-d) or a detections file or directory (-D).

Example:
  sublime analyze -i message.eml -d 'type.inbound and length(attachments) > 0'
  sublime analyze -i inbox.mbox -D ./detections`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Verbose = flags.verbose > 0
			s, ctx, err := a.newSession(cmd, &flags)
			if err != nil {
				return err
			}
			if err = s.services.Permission.Request(ctx, service.CommandAnalyze); err != nil {
				return err
			}
			doc, err := s.fetch(ctx, "Analyzing", func(ctx context.Context) (models.Document, error) {
				return s.services.Messages.Analyze(ctx, params)
			})
			if err != nil {
				return err
			}
			return s.render(output.KindAnalyze, doc, s.options())
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.InputPath, "input", "i", "", "Input EML, MSG, MBOX or enriched MDM file")
	f.StringVarP(&params.DetectionsPath, "detections", "D", "", "Detections file or directory")
	f.StringVarP(&params.RawDetection, "detection", "d", "", "Raw detection, surrounded by single quotes")
	f.StringVarP(&params.RouteType, "type", "t", string(models.RouteInbound), routeTypeUsage)
	f.StringVarP(&params.Mailbox, "user", "u", "", "User's mailbox email address (EML and MSG only)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func (a *App) newEnrichCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.MessageParams
	)

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Enrich a message into a Message Data Model",
		Long: `Enrich an EML or MSG file. The enriched MDM is always saved: to -o when
given, otherwise to the input name with an .mdm (json) or .txt (txt)
extension inside the save directory. Enrichment details are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMDM(cmd, &flags, params.InputPath, "Enriching", service.CommandEnrich,
				func(ctx context.Context, s *session) (models.Document, error) {
					return s.services.Messages.Enrich(ctx, params)
				})
		},
	}

	flags.register(cmd, output.FormatJSON)
	f := cmd.Flags()
	f.StringVarP(&params.InputPath, "input", "i", "", "Input EML or MSG file")
	f.StringVarP(&params.Mailbox, "user", "u", "", "User's mailbox email address")
	f.StringVarP(&params.RouteType, "type", "t", string(models.RouteInbound), routeTypeUsage)
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func (a *App) newGenerateCommand() *cobra.Command {
	var (
		flags  commonFlags
		params service.MessageParams
	)

	cmd := &cobra.Command{
		Use:    "generate",
		Short:  "Generate an unenriched MDM from a message",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMDM(cmd, &flags, params.InputPath, "Generating", service.CommandGenerate,
				func(ctx context.Context, s *session) (models.Document, error) {
					return s.services.Messages.Generate(ctx, params)
				})
		},
	}

	flags.register(cmd, output.FormatJSON)
	f := cmd.Flags()
	f.StringVarP(&params.InputPath, "input", "i", "", "Input EML or MSG file")
	f.StringVarP(&params.Mailbox, "user", "u", "", "User's mailbox email address")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// runMDM saves the message data model of the response. Enrich responses
// carry it under message_data_model next to the enrichment details.
func (a *App) runMDM(
	cmd *cobra.Command,
	flags *commonFlags,
	inputPath, label, command string,
	call func(ctx context.Context, s *session) (models.Document, error),
) error {
	s, ctx, err := a.newSession(cmd, flags)
	if err != nil {
		return err
	}
	if err = s.services.Permission.Request(ctx, command); err != nil {
		return err
	}

	doc, err := s.fetch(ctx, label, func(ctx context.Context) (models.Document, error) {
		return call(ctx, s)
	})
	if err != nil {
		return err
	}

	mdm := doc
	if doc.Has(models.FieldMessageDataModel) {
		mdm = doc.Document(models.FieldMessageDataModel)
	}

	if command == service.CommandEnrich {
		if err = output.Render(s.app.Out, output.FormatTXT, output.KindEnrichDetails, doc, s.options()); err != nil {
			return err
		}
	}

	path := flags.output
	if path == "" {
		path = output.DefaultMDMPath(s.cfg.Settings.SaveDir, inputPath, s.format)
	}
	return s.save(path, output.KindMDM, mdm, s.options())
}

func (a *App) newQueryCommand() *cobra.Command {
	var (
		flags   commonFlags
		params  service.QueryParams
		showAll bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run queries against an enriched MDM",
		Long: `Run a raw query (-q) or a queries file or directory (-Q) against an
enriched Message Data Model.

Example:
  sublime query -i message.mdm -q 'sender.email.domain.root_domain'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Verbose = flags.verbose > 0
			s, ctx, err := a.newSession(cmd, &flags)
			if err != nil {
				return err
			}
			doc, err := s.fetch(ctx, "Querying", func(ctx context.Context) (models.Document, error) {
				return s.services.Messages.Query(ctx, params)
			})
			if err != nil {
				return err
			}
			opts := s.options()
			opts.ShowAll = showAll
			return s.render(output.KindQuery, doc, opts)
		},
	}

	flags.register(cmd, output.FormatTXT)
	f := cmd.Flags()
	f.StringVarP(&params.InputPath, "input", "i", "", "Enriched MDM file")
	f.StringVarP(&params.QueriesPath, "queries", "Q", "", "Query file or directory")
	f.StringVarP(&params.RawQuery, "query", "q", "", "Raw query, surrounded by single quotes")
	f.BoolVarP(&showAll, "show-all", "a", false, "Show every query, including the ones with no result")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
