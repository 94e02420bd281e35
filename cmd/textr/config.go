// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/textr/textr/internal/config"
)

// newConfigCommand creates the `textr config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage textr configuration",
		Long: `Manage textr configuration.

Configuration is stored in:
  - Linux: ~/.config/textr/config.cue
  - macOS: ~/Library/Application Support/textr/config.cue
  - Windows: %APPDATA%\textr\config.cue

Any key can be overridden with a TEXTR_* environment variable, for example
TEXTR_UNIQ_COUNT_WIDTH=7.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			showConfig(cmd.OutOrStdout(), app)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(app.cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd.OutOrStdout(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig()
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, app *App) {
	cfg := app.cfg
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if app.cfgPath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), app.cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	section := func(name string, kv ...any) {
		fmt.Fprintf(w, "\n%s:\n", keyStyle.Render(name))
		for i := 0; i+1 < len(kv); i += 2 {
			fmt.Fprintf(w, "  %s: %s\n", kv[i], valueStyle.Render(fmt.Sprint(kv[i+1])))
		}
	}
	section("ui", "color_scheme", cfg.UI.ColorScheme, "verbose", cfg.UI.Verbose)
	section("shell", "enable_builtins", cfg.Shell.EnableBuiltins)
	section("cat", "number_width", cfg.Cat.NumberWidth)
	section("head", "lines", cfg.Head.Lines)
	section("uniq", "count_width", cfg.Uniq.CountWidth)
	section("wc", "count_width", cfg.Wc.CountWidth)
}

func showConfigPath(w io.Writer, app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	if app.cfgPath != "" {
		fmt.Fprintf(w, "Config file: %s\n", app.cfgPath)
	} else {
		fmt.Fprintln(w, "Config file: (none, using defaults)")
	}
	return nil
}
