// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/tui"
)

func (a *App) newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Start an interactive session. Every line is run as a sublime command;
'exit', 'quit' or ctrl+d leave, 'clear' clears the screen. Commands that
ask for confirmation need --yes inside the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.interactive {
				return ErrNestedREPL
			}
			return tui.RunREPL(cmd.Context(), a.In, a.Out, a.replExecutor())
		},
	}
}

// replExecutor runs each line against a fresh command tree and returns
// everything it printed.
func (a *App) replExecutor() tui.Executor {
	return func(ctx context.Context, args []string) (string, error) {
		var buf bytes.Buffer
		child := &App{Out: &buf, Err: &buf, BuildInfo: a.BuildInfo}

		root := child.NewRootCommand()
		root.SetArgs(args)
		err := root.ExecuteContext(ctx)
		return buf.String(), err
	}
}
