// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/textr/textr/internal/config"
	"github.com/textr/textr/pkg/types"
)

// docsWrapWidth is the word wrap width for rendered docs.
const docsWrapWidth = 80

//go:embed docs/*.md
var docsFS embed.FS

// newDocsCommand creates the `textr docs` command.
func newDocsCommand(app *App) *cobra.Command {
	var plain bool

	docsCmd := &cobra.Command{
		Use:   "docs [UTILITY]",
		Short: "Show the reference for textr or one of its utilities",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return docTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := "textr"
			if len(args) == 1 {
				topic = args[0]
			}

			md, err := fs.ReadFile(docsFS, path.Join("docs", topic+".md"))
			if err != nil {
				return &ExitError{
					Code: types.ExitUsage,
					Err:  fmt.Errorf("docs: no reference for %q (available: %s)", topic, strings.Join(docTopics(), ", ")),
				}
			}

			out := string(md)
			if !plain {
				if out, err = renderMarkdown(out, app.cfg.UI.ColorScheme); err != nil {
					return fmt.Errorf("failed to render docs: %w", err)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	docsCmd.Flags().BoolVar(&plain, "plain", false, "print the raw Markdown")
	return docsCmd
}

// renderMarkdown renders md with glamour in the configured color scheme.
func renderMarkdown(md string, scheme config.ColorScheme) (string, error) {
	style := glamour.WithAutoStyle()
	if scheme == config.ColorSchemeDark || scheme == config.ColorSchemeLight {
		style = glamour.WithStandardStyle(string(scheme))
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(docsWrapWidth))
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

// docTopics lists the embedded reference pages.
func docTopics() []string {
	entries, err := fs.ReadDir(docsFS, "docs")
	if err != nil {
		return nil
	}
	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
	}
	return topics
}
