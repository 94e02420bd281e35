// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// catCommand implements the cat utility.
type catCommand struct {
	commandInfo
	numberWidth int
}

// newCatCommand creates a new cat command.
func newCatCommand(opts Options) *catCommand {
	return &catCommand{
		commandInfo: commandInfo{
			name:      "cat",
			synopsis:  "Concatenate files to standard output",
			usageLine: "[-n|-b] [FILE...]",
			flags: []FlagInfo{
				{Name: "number", ShortName: "n", Description: "number all output lines"},
				{Name: "number-nonblank", ShortName: "b", Description: "number non-blank output lines"},
			},
		},
		numberWidth: opts.CatNumberWidth,
	}
}

// Run executes the cat command.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := newFlagSet(c.name)
	number := fs.BoolP("number", "n", false, "number all output lines")
	nonBlank := fs.BoolP("number-nonblank", "b", false, "number non-blank output lines")

	if done, err := parseFlags(hc, c, fs, args[1:]); done {
		return err
	}
	if err := conflict(c.name, fs, "number", "number-nonblank"); err != nil {
		return err
	}

	out := bufio.NewWriter(hc.Stdout)
	return ProcessSources(hc, c.name, fs.Args(),
		func(r io.Reader, _ string, _, _ int) error {
			var err error
			switch {
			case *number || *nonBlank:
				// Numbering restarts for every source.
				err = c.numberLines(out, r, *nonBlank)
			default:
				err = copyThroughCat(ctx, hc, r, out)
			}
			if err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		})
}

// numberLines writes each line of in prefixed by its number. With nonBlank,
// empty lines are written without a number and do not advance the count.
func (c *catCommand) numberLines(out *bufio.Writer, in io.Reader, nonBlank bool) error {
	lr := NewLineReader(in)
	n := 1
	for line := range lr.Lines() {
		text := chomp(line)
		if nonBlank && text == "" {
			_ = out.WriteByte('\n') // Sticky bufio error surfaces at Flush
			continue
		}
		fmt.Fprintf(out, "%*d\t%s\n", c.numberWidth, n, text)
		n++
	}
	return lr.Err()
}
