// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// headCommand implements the head utility.
type headCommand struct {
	commandInfo
	defaultLines int
}

// newHeadCommand creates a new head command.
func newHeadCommand(opts Options) *headCommand {
	return &headCommand{
		commandInfo: commandInfo{
			name:      "head",
			synopsis:  "Output the first part of files",
			usageLine: "[-n LINES | -c BYTES] [FILE...]",
			flags: []FlagInfo{
				{Name: "lines", ShortName: "n", Description: "number of lines to output", TakesValue: true},
				{Name: "bytes", ShortName: "c", Description: "number of bytes to output", TakesValue: true},
			},
		},
		defaultLines: opts.HeadLines,
	}
}

// Run executes the head command.
func (c *headCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := newFlagSet(c.name)
	linesArg := fs.StringP("lines", "n", strconv.Itoa(c.defaultLines), "number of lines to output")
	bytesArg := fs.StringP("bytes", "c", "", "number of bytes to output")

	if done, err := parseFlags(hc, c, fs, args[1:]); done {
		return err
	}
	if err := conflict(c.name, fs, "lines", "bytes"); err != nil {
		return err
	}

	numLines, err := parsePositive(*linesArg, "line")
	if err != nil {
		return usageError(c.name, err)
	}
	numBytes := 0
	if fs.Changed("bytes") {
		if numBytes, err = parsePositive(*bytesArg, "byte"); err != nil {
			return usageError(c.name, err)
		}
	}

	out := bufio.NewWriter(hc.Stdout)
	return ProcessSources(hc, c.name, fs.Args(),
		func(r io.Reader, name string, index, total int) error {
			if total > 1 {
				if index > 0 {
					_ = out.WriteByte('\n') // Sticky bufio error surfaces at Flush
				}
				fmt.Fprintf(out, "==> %s <==\n", name)
			}

			var err error
			if numBytes > 0 {
				err = headBytes(out, r, numBytes)
			} else {
				err = headLines(out, r, numLines)
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

// parsePositive parses a count argument that must be a positive integer.
func parsePositive(val, unit string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("illegal %s count -- %s", unit, val)
	}
	return n, nil
}

// headLines writes the first n lines of in, each terminated by a newline.
// A carriage return before the newline is kept. No line past the nth is
// read, so head returns as soon as its output is complete.
func headLines(out *bufio.Writer, in io.Reader, n int) error {
	if n <= 0 {
		return nil
	}
	lr := NewLineReader(in)
	count := 0
	for line := range lr.Lines() {
		writeLossy(out, strings.TrimSuffix(line, "\n"))
		_ = out.WriteByte('\n')
		count++
		if count == n {
			break
		}
	}
	return lr.Err()
}

// headBytes writes the first n bytes of in. Invalid UTF-8, including a
// character cut at the boundary, is replaced by U+FFFD.
func headBytes(out *bufio.Writer, in io.Reader, n int) error {
	data, err := io.ReadAll(io.LimitReader(in, int64(n)))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	writeLossy(out, string(data))
	return nil
}

// writeLossy writes s with one U+FFFD for every byte that does not start a
// valid UTF-8 sequence. Write errors are sticky and surface at Flush.
func writeLossy(out *bufio.Writer, s string) {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			_, _ = out.WriteRune(utf8.RuneError)
		} else {
			_, _ = out.WriteString(s[:size])
		}
		s = s[size:]
	}
}
