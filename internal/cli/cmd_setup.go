// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/sublime-security/sublime-cli/internal/app"
	"github.com/sublime-security/sublime-cli/internal/config"
)

// readClipboard is replaced in tests.
var readClipboard = clipboard.ReadAll

func (a *App) newSetupCommand() *cobra.Command {
	var (
		settings      config.Settings
		fromClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure the API key and save directory",
		Long: `Persist the API key and the default save directory. Values that are not
given keep their saved state.

Example:
  sublime setup -k <api key>
  sublime setup --clipboard -s ~/mdm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fromClipboard {
				key, err := readClipboard()
				if err != nil {
					return fmt.Errorf("failed to read clipboard: %w", err)
				}
				settings.APIKey = strings.TrimSpace(key)
			}

			path, err := config.ResolveSettingsPath()
			if err != nil {
				return err
			}
			if _, err = config.SaveSettings(path, settings); err != nil {
				return err
			}

			_, err = fmt.Fprintf(a.Out, app.MsgConfigurationSave+"\n", path)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&settings.APIKey, "api-key", "k", "", "Key to include in API requests")
	f.StringVarP(&settings.SaveDir, "save-dir", "s", "", "Default directory for saved files")
	f.BoolVar(&fromClipboard, "clipboard", false, "Read the API key from the clipboard")
	cmd.MarkFlagsMutuallyExclusive("api-key", "clipboard")
	return cmd
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := a.BuildInfo
			fmt.Fprintf(a.Out, "sublime %s\n", info.BuildVersion())
			fmt.Fprintf(a.Out, "  Commit:     %s\n", info.BuildCommit())
			fmt.Fprintf(a.Out, "  Built:      %s\n", info.BuildDate())
			fmt.Fprintf(a.Out, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(a.Out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
