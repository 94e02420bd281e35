// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// maxEchoArgs bounds the number of text operands echo accepts.
const maxEchoArgs = 10

// echoCommand implements the echo utility.
type echoCommand struct {
	commandInfo
}

// newEchoCommand creates a new echo command.
func newEchoCommand() *echoCommand {
	return &echoCommand{
		commandInfo: commandInfo{
			name:      "echo",
			synopsis:  "Print text to standard output",
			usageLine: "[-n] TEXT...",
			flags: []FlagInfo{
				{Name: "no-newline", ShortName: "n", Description: "do not print the trailing newline"},
			},
		},
	}
}

// Run executes the echo command.
func (c *echoCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := newFlagSet(c.name)
	omitNewline := fs.BoolP("no-newline", "n", false, "do not print the trailing newline")

	if done, err := parseFlags(hc, c, fs, args[1:]); done {
		return err
	}

	text := fs.Args()
	switch {
	case len(text) == 0:
		return usageError(c.name, fmt.Errorf("missing TEXT operand"))
	case len(text) > maxEchoArgs:
		return usageError(c.name, fmt.Errorf("at most %d TEXT operands are accepted, got %d", maxEchoArgs, len(text)))
	}

	ending := "\n"
	if *omitNewline {
		ending = ""
	}
	if _, err := io.WriteString(hc.Stdout, strings.Join(text, " ")+ending); err != nil {
		return wrapError(c.name, fmt.Errorf("writing output: %w", err))
	}
	return nil
}
