// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/textr/textr/internal/issue"
)

type (
	// uniqCommand implements the uniq utility.
	uniqCommand struct {
		commandInfo
		countWidth int
	}

	// uniqOptions selects how runs are compared and which are printed.
	uniqOptions struct {
		showCount      bool
		ignoreCase     bool
		duplicatesOnly bool
		uniqueOnly     bool
	}
)

// newUniqCommand creates a new uniq command.
func newUniqCommand(opts Options) *uniqCommand {
	return &uniqCommand{
		commandInfo: commandInfo{
			name:      "uniq",
			synopsis:  "Collapse adjacent duplicate lines",
			usageLine: "[-c] [-i] [-d|-u] [IN_FILE [OUT_FILE]]",
			flags: []FlagInfo{
				{Name: "count", ShortName: "c", Description: "prefix lines by the number of occurrences"},
				{Name: "ignore-case", ShortName: "i", Description: "ignore case when comparing"},
				{Name: "repeated", ShortName: "d", Description: "only print duplicate lines"},
				{Name: "unique", ShortName: "u", Description: "only print unique lines"},
			},
		},
		countWidth: opts.UniqCountWidth,
	}
}

// Run executes the uniq command.
func (c *uniqCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts uniqOptions
	fs := newFlagSet(c.name)
	fs.BoolVarP(&opts.showCount, "count", "c", false, "prefix lines by the number of occurrences")
	fs.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "ignore case when comparing")
	fs.BoolVarP(&opts.duplicatesOnly, "repeated", "d", false, "only print duplicate lines")
	fs.BoolVarP(&opts.uniqueOnly, "unique", "u", false, "only print unique lines")

	if done, err := parseFlags(hc, c, fs, args[1:]); done {
		return err
	}
	if err := conflict(c.name, fs, "repeated", "unique"); err != nil {
		return err
	}

	operands := fs.Args()
	if len(operands) > 2 {
		return usageError(c.name, fmt.Errorf("extra operand %q", operands[2]))
	}
	inName := StdinName
	if len(operands) > 0 {
		inName = operands[0]
	}

	in, err := OpenSource(hc, inName)
	if err != nil {
		return wrapError(c.name, issue.ForPath(err, "open input", inName))
	}
	defer func() { _ = in.Close() }() // Read-only; close error carries no data loss

	if len(operands) < 2 {
		return c.collapseTo(hc.Stdout, in, opts)
	}
	return c.collapseToFile(hc, operands[1], in, opts)
}

// collapseToFile creates (or truncates) path and writes the collapsed input
// to it, aggregating the close error via named return.
func (c *uniqCommand) collapseToFile(hc *HandlerContext, outName string, in io.Reader, opts uniqOptions) (err error) {
	path := outName
	if !filepath.IsAbs(path) && hc.Dir != "" {
		path = filepath.Join(hc.Dir, path)
	}

	out, err := os.Create(path)
	if err != nil {
		return wrapError(c.name, issue.ForPath(err, "create output", outName))
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = wrapError(c.name, fmt.Errorf("%s: %w", outName, closeErr))
		}
	}()

	return c.collapseTo(out, in, opts)
}

// collapseTo streams the collapsed runs of in to out through a buffer that
// is flushed before returning.
func (c *uniqCommand) collapseTo(out io.Writer, in io.Reader, opts uniqOptions) error {
	bw := bufio.NewWriter(out)
	if err := c.processInput(bw, in, opts); err != nil {
		return wrapError(c.name, err)
	}
	if err := bw.Flush(); err != nil {
		return wrapError(c.name, fmt.Errorf("writing output: %w", err))
	}
	return nil
}

// processInput collapses adjacent duplicate lines of in and writes the
// selected runs to out. Lines keep their terminators, so an unterminated
// final line is written back unterminated.
func (c *uniqCommand) processInput(out *bufio.Writer, in io.Reader, opts uniqOptions) error {
	key := TrimKey
	if opts.ignoreCase {
		key = FoldKey
	}

	lr := NewLineReader(in)
	for rec := range CollapseFunc(lr.Lines(), key) {
		if opts.duplicatesOnly && rec.Count <= 1 {
			continue
		}
		if opts.uniqueOnly && rec.Count > 1 {
			continue
		}
		if _, err := out.WriteString(FormatRecord(rec, opts.showCount, c.countWidth)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return lr.Err()
}
