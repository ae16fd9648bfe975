// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/output"
	"github.com/sublime-security/sublime-cli/internal/utils"
	"github.com/sublime-security/sublime-cli/models"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

func (a *App) newListenCommand() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "listen EVENT_NAME",
		Short: "Listen for real-time events in your Sublime environment",
		Long: `Listen for real-time events occurring in your Sublime environment and
keep the list of pending events on screen.

Events: "flagged-messages"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ctx, err := a.newSession(cmd, &flags)
			if err != nil {
				return err
			}

			opts := s.options()
			tty := utils.IsTerminal(a.Out)
			return s.services.Listen.Listen(ctx, args[0], func(events []models.Event) error {
				if tty {
					if _, err := io.WriteString(a.Out, clearScreen); err != nil {
						return err
					}
				}
				return output.RenderEvents(a.Out, s.format, events, opts)
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.apiKey, "api-key", "k", "", "Key to include in API requests")
	f.StringVarP(&flags.format, "format", "f", string(output.FormatTXT), "Output format (json, txt)")
	f.CountVarP(&flags.verbose, "verbose", "v", "Verbose output")
	_ = f.MarkHidden("format")
	return cmd
}
