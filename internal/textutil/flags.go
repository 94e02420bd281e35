// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// newFlagSet creates a silent pflag set for a command. pflag accepts POSIX
// grouped short flags ("-nc") and long forms ("--count").
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

// parseFlags parses args into fs. It returns done=true when the caller
// should stop: after printing usage for --help (err is nil), or on a
// parse failure (err wraps ErrUsage).
func parseFlags(hc *HandlerContext, cmd Command, fs *pflag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			writeUsage(hc.Stdout, cmd, fs)
			return true, nil
		}
		return true, usageError(cmd.Name(), err)
	}
	return false, nil
}

// writeUsage prints the help text for cmd.
func writeUsage(w io.Writer, cmd Command, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s %s\n", cmd.Synopsis(), cmd.Name(), cmd.UsageLine())
	if usages := fs.FlagUsages(); usages != "" {
		fmt.Fprintf(w, "\nFlags:\n%s", usages)
	}
}

// conflict reports a usage error when both named flags were set.
func conflict(cmdName string, fs *pflag.FlagSet, a, b string) error {
	if fs.Changed(a) && fs.Changed(b) {
		return usageError(cmdName, fmt.Errorf("--%s and --%s cannot be used together", a, b))
	}
	return nil
}
