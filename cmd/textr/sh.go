// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textr/textr/internal/issue"
	"github.com/textr/textr/internal/shell"
	"github.com/textr/textr/pkg/types"
)

// newShCommand creates the `textr sh` command.
func newShCommand(app *App) *cobra.Command {
	var (
		script     string
		noBuiltins bool
	)

	shCmd := &cobra.Command{
		Use:   "sh [-c SCRIPT | FILE] [ARG...]",
		Short: "Run a POSIX shell script with textr utilities as built-ins",
		Long: `Run a POSIX shell script with the embedded interpreter.

cat, head, uniq and wc resolve to the textr implementations before any host
binary; other commands run from PATH. Set shell.enable_builtins: false in the
configuration, or pass --no-builtins, to use host binaries only.`,
		Example: `  textr sh -c 'cat notes.txt | uniq -c | head -n 5'
  textr sh count.sh words.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := shell.Request{
				Stdin:  app.stdin,
				Stdout: app.stdout,
				Stderr: app.stderr,
			}

			switch {
			case cmd.Flags().Changed("command"):
				req.Script, req.Name, req.Args = script, "-c", args
			case len(args) > 0:
				data, err := os.ReadFile(args[0])
				if err != nil {
					return &ExitError{Code: types.ExitFailure, Err: issue.ForPath(err, "read script", args[0])}
				}
				req.Script, req.Name, req.Args = string(data), args[0], args[1:]
			default:
				return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("sh: a script file or -c SCRIPT is required")}
			}

			enable := app.cfg.Shell.EnableBuiltins && !noBuiltins
			runner := shell.New(shell.Options{
				Registry:       app.registry(),
				EnableBuiltins: enable,
				Logger:         app.logger,
			})
			app.logger.Debug("running script", "name", req.Name, "builtins", enable)

			res := runner.Run(cmd.Context(), req)
			switch {
			case res.Error != nil:
				return &ExitError{Code: res.ExitCode, Err: res.Error}
			case !res.ExitCode.IsSuccess():
				return &ExitError{Code: res.ExitCode}
			}
			return nil
		},
	}

	shCmd.Flags().StringVarP(&script, "command", "c", "", "read the script from `SCRIPT`")
	shCmd.Flags().BoolVar(&noBuiltins, "no-builtins", false, "run every command from PATH")
	// Arguments after the script belong to the script.
	shCmd.Flags().SetInterspersed(false)

	return shCmd
}
