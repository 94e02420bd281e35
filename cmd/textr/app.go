// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/textr/textr/internal/config"
	"github.com/textr/textr/internal/issue"
	"github.com/textr/textr/internal/textutil"
)

type (
	// App wires CLI services and shared state. All Cobra command handlers
	// receive an App reference.
	App struct {
		Config config.Provider

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
		logger *log.Logger

		// args is the command line handed to cobra, without the program name.
		args []string

		// verbose and cfgFile are bound to the root persistent flags.
		verbose bool
		cfgFile string

		cfg     *config.Config
		cfgPath string
		loaded  bool
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App from deps.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	logger := log.NewWithOptions(deps.Stderr, log.Options{Prefix: "textr"})
	logger.SetLevel(log.WarnLevel)

	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		logger: logger,
		cfg:    config.DefaultConfig(),
	}
}

// loadConfig loads the configuration once. A configuration that cannot be
// loaded is reported as a warning and the defaults are used instead.
func (a *App) loadConfig(ctx context.Context) {
	if a.loaded {
		return
	}
	a.loaded = true

	cfg, path, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
	} else {
		a.cfg, a.cfgPath = cfg, path
	}

	// Apply verbose from config if not set via flag
	if !a.verbose {
		a.verbose = a.cfg.UI.Verbose
	}
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	if a.cfgPath != "" {
		a.logger.Debug("loaded configuration", "path", a.cfgPath)
	}
}

// registry builds the built-in registry from the loaded configuration.
func (a *App) registry() *textutil.Registry {
	return textutil.NewBuiltinRegistry(a.cfg.Options())
}

// handlerContext binds built-ins to the App's streams and the process
// environment and working directory.
func (a *App) handlerContext() *textutil.HandlerContext {
	hc := textutil.OSHandlerContext()
	hc.Stdin = a.stdin
	hc.Stdout = a.stdout
	hc.Stderr = a.stderr
	return hc
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
