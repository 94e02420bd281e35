// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"github.com/textr/textr/internal/textutil"
	"github.com/textr/textr/pkg/types"
)

// newUtilityCommands creates one subcommand per built-in utility. Cobra flag
// parsing is disabled so the utility sees its arguments verbatim.
func newUtilityCommands(app *App) []*cobra.Command {
	reg := textutil.NewBuiltinRegistry(textutil.DefaultOptions())

	cmds := make([]*cobra.Command, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		builtin, _ := reg.Lookup(name)
		cmds = append(cmds, &cobra.Command{
			Use:                name + " " + builtin.UsageLine(),
			Short:              builtin.Synopsis(),
			Long:               builtin.Synopsis() + "\n\nRun '" + name + " --help' for the utility's flags.",
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runUtility(cmd, app, name, args)
			},
		})
	}
	return cmds
}

// runUtility runs the named built-in with args. Root flags given before the
// utility name (textr -v uniq ...) are applied first since cobra does not
// parse them for utility commands; everything after the name belongs to the
// utility.
func runUtility(cmd *cobra.Command, app *App, name string, args []string) error {
	rootArgs, rest := splitRootFlags(app.args, name, args)
	if err := cmd.Root().PersistentFlags().Parse(rootArgs); err != nil {
		return &ExitError{Code: types.ExitUsage, Err: err}
	}
	app.loadConfig(cmd.Context())
	app.logger.Debug("running utility", "name", name, "args", rest)

	ctx := textutil.WithHandlerContext(cmd.Context(), app.handlerContext())
	err := app.registry().Run(ctx, name, append([]string{name}, rest...))
	return utilityExitError(err)
}

// utilityExitError maps a built-in error to the ExitError carrying its exit code.
func utilityExitError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, textutil.ErrSourcesFailed):
		// Each failed source was already reported.
		return &ExitError{Code: types.ExitFailure}
	default:
		return &ExitError{Code: textutil.ExitCodeOf(err), Err: err}
	}
}

// splitRootFlags separates the root flags preceding the utility name in the
// full command line from the utility's own arguments. Cobra hands a utility
// command the command line minus the first occurrence of its name, so argv
// splits at that occurrence. Without a matching command line, every argument
// belongs to the utility.
func splitRootFlags(argv []string, name string, args []string) (rootArgs, rest []string) {
	i := slices.Index(argv, name)
	if i < 0 || !slices.Equal(slices.Concat(argv[:i], argv[i+1:]), args) {
		return nil, args
	}
	return argv[:i], argv[i+1:]
}
