// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/textr/textr/internal/textutil"
	"github.com/textr/textr/pkg/types"
)

type (
	// Runner executes scripts with textr built-ins available as commands.
	Runner struct {
		registry       *textutil.Registry
		enableBuiltins bool
		logger         *log.Logger
	}

	// Options configures a Runner.
	Options struct {
		// Registry supplies the built-ins. Nil disables them.
		Registry *textutil.Registry
		// EnableBuiltins resolves registered commands before host binaries.
		EnableBuiltins bool
		// Logger receives debug output about command dispatch.
		Logger *log.Logger
	}

	// Request describes one script execution.
	Request struct {
		// Script is the shell source to run.
		Script string
		// Name labels the script in parse errors.
		Name string
		// Args are the positional parameters ($1, $2, ...).
		Args []string
		// Dir is the initial working directory. Empty means the process cwd.
		Dir string
		// Env is the environment in KEY=VALUE form. Nil inherits the process environment.
		Env []string

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Result is the outcome of a script execution.
	Result struct {
		// ExitCode is the script's exit status.
		ExitCode types.ExitCode
		// Error is set when the script could not be parsed or run, as
		// opposed to exiting with a non-zero status.
		Error error
	}
)

// New creates a Runner.
func New(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		registry:       opts.Registry,
		enableBuiltins: opts.EnableBuiltins && opts.Registry != nil,
		logger:         logger,
	}
}

// Run parses and executes req.Script.
func (r *Runner) Run(ctx context.Context, req Request) *Result {
	name := req.Name
	if name == "" {
		name = "script"
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(req.Script), name)
	if err != nil {
		return &Result{ExitCode: types.ExitUsage, Error: fmt.Errorf("failed to parse script: %w", err)}
	}

	opts := []interp.RunnerOption{
		interp.StdIO(req.Stdin, req.Stdout, req.Stderr),
		interp.ExecHandlers(r.execHandler),
	}
	if req.Dir != "" {
		opts = append(opts, interp.Dir(req.Dir))
	}
	if req.Env != nil {
		opts = append(opts, interp.Env(expand.ListEnviron(req.Env...)))
	}

	// Prepend "--" to signal end of options; without this, args like "-v"
	// are interpreted as shell options by interp.Params()
	if len(req.Args) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, req.Args...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return &Result{ExitCode: types.ExitFailure, Error: fmt.Errorf("failed to create interpreter: %w", err)}
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &Result{ExitCode: types.ExitCode(exitStatus)}
		}
		return &Result{ExitCode: types.ExitFailure, Error: fmt.Errorf("script execution failed: %w", err)}
	}

	return &Result{ExitCode: types.ExitSuccess}
}

// execHandler handles external command execution.
func (r *Runner) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		if r.enableBuiltins {
			if handled, err := r.tryBuiltin(ctx, args); handled {
				return err
			}
		}

		if len(args) > 0 {
			r.logger.Debug("running host command", "name", args[0])
		}
		return next(ctx, args)
	}
}

// tryBuiltin runs args with a registered built-in.
//
// It returns handled=false when args[0] is not registered, so the caller
// falls back to host binaries. A registered built-in that fails is still
// handled: its error is reported on the script's stderr and converted to
// an exit status, without falling back.
func (r *Runner) tryBuiltin(ctx context.Context, args []string) (handled bool, err error) {
	if len(args) == 0 {
		return false, nil
	}

	cmd, found := r.registry.Lookup(args[0])
	if !found {
		return false, nil
	}
	r.logger.Debug("running built-in", "name", args[0], "args", args[1:])

	// Bind the built-in to this pipeline stage's streams and directory.
	hc := textutil.ExtractHandlerContext(ctx)
	runErr := cmd.Run(textutil.WithHandlerContext(ctx, hc), args)
	if runErr == nil {
		return true, nil
	}

	// Per-source failures were already reported by the built-in.
	if !errors.Is(runErr, textutil.ErrSourcesFailed) {
		fmt.Fprintln(hc.Stderr, runErr)
	}
	return true, interp.ExitStatus(textutil.ExitCodeOf(runErr))
}
