// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/textr/textr/internal/issue"
	"github.com/textr/textr/internal/textutil"
	"github.com/textr/textr/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the textr command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textr",
		Short: "Classic line-oriented text utilities in one binary",
		Long: TitleStyle.Render("textr") + SubtitleStyle.Render(" - classic line-oriented text utilities") + `

textr bundles cat, echo, head, uniq and wc. Each utility reads the named
files or standard input and writes to standard output. The same utilities
are available as built-ins inside 'textr sh'.

` + SubtitleStyle.Render("Examples:") + `
  textr uniq -c words.txt        Count adjacent duplicate lines
  textr head -n 3 a.txt b.txt    First three lines of each file
  textr sh -c 'cat *.log | wc -l'
  textr docs uniq                Show the uniq reference`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Utility commands parse their own flags and load configuration in RunE.
			if !cmd.DisableFlagParsing {
				app.loadConfig(cmd.Context())
			}
		},
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/textr/config.cue)")

	for _, c := range newUtilityCommands(app) {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(newShCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newDocsCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes the CLI for argv (argv[0] is the program name) and returns
// the process exit code.
func Run(ctx context.Context, argv []string, deps Dependencies) types.ExitCode {
	app := NewApp(deps)
	rootCmd := NewRootCommand(app)
	app.args = resolveArgs(argv, textutil.NewBuiltinRegistry(textutil.DefaultOptions()).Names())
	rootCmd.SetArgs(app.args)

	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			printError(w, err, app.verbose)
		}),
	)
	if err == nil {
		return types.ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}

// Execute runs the CLI with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(int(Run(context.Background(), os.Args, Dependencies{})))
}

// printError writes err for the user. An ExitError without a cause was
// already reported and prints nothing; one with a cause is a built-in or
// shell failure and prints as is, with the actionable details when verbose.
func printError(w io.Writer, err error, verbose bool) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return
	}
	if exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, exitErr.Err)
	var ae *issue.ActionableError
	if verbose && errors.As(exitErr.Err, &ae) {
		fmt.Fprintln(w, ae.Format(true))
	}
}
