// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"
)

type (
	// wcCommand implements the wc (word count) utility.
	wcCommand struct {
		commandInfo
		countWidth int
	}

	// wcCounts holds the counts for a source.
	wcCounts struct {
		lines int64
		words int64
		bytes int64
		chars int64
	}

	// wcSelection records which counts are printed.
	wcSelection struct {
		lines bool
		words bool
		bytes bool
		chars bool
	}
)

// newWcCommand creates a new wc command.
func newWcCommand(opts Options) *wcCommand {
	return &wcCommand{
		commandInfo: commandInfo{
			name:      "wc",
			synopsis:  "Count lines, words, bytes and characters",
			usageLine: "[-l] [-w] [-c|-m] [FILE...]",
			flags: []FlagInfo{
				{Name: "lines", ShortName: "l", Description: "print line count"},
				{Name: "words", ShortName: "w", Description: "print word count"},
				{Name: "bytes", ShortName: "c", Description: "print byte count"},
				{Name: "chars", ShortName: "m", Description: "print character count"},
			},
		},
		countWidth: opts.WcCountWidth,
	}
}

// Run executes the wc command.
func (c *wcCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var sel wcSelection
	fs := newFlagSet(c.name)
	fs.BoolVarP(&sel.lines, "lines", "l", false, "print line count")
	fs.BoolVarP(&sel.words, "words", "w", false, "print word count")
	fs.BoolVarP(&sel.bytes, "bytes", "c", false, "print byte count")
	fs.BoolVarP(&sel.chars, "chars", "m", false, "print character count")

	if done, err := parseFlags(hc, c, fs, args[1:]); done {
		return err
	}
	if err := conflict(c.name, fs, "bytes", "chars"); err != nil {
		return err
	}

	// If no flags specified, show lines, words, and bytes
	if !sel.lines && !sel.words && !sel.bytes && !sel.chars {
		sel = wcSelection{lines: true, words: true, bytes: true}
	}

	files := fs.Args()
	out := bufio.NewWriter(hc.Stdout)
	var total wcCounts

	err := ProcessSources(hc, c.name, files,
		func(r io.Reader, name string, _, _ int) error {
			counts, countErr := countReader(r)
			if countErr != nil {
				return countErr
			}
			total.add(counts)

			c.printCounts(out, counts, name, sel)
			if err := out.Flush(); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		})
	if err != nil && !errors.Is(err, ErrSourcesFailed) {
		return err
	}

	if len(files) > 1 {
		c.printCounts(out, total, "total", sel)
		if flushErr := out.Flush(); flushErr != nil {
			return wrapError(c.name, fmt.Errorf("writing output: %w", flushErr))
		}
	}

	return err
}

// add accumulates o into w.
func (w *wcCounts) add(o wcCounts) {
	w.lines += o.lines
	w.words += o.words
	w.bytes += o.bytes
	w.chars += o.chars
}

// countReader reads from r and returns the counts using streaming I/O.
// Lines are newline characters; words are maximal runs of non-space runes;
// an invalid UTF-8 byte counts as one character.
func countReader(r io.Reader) (wcCounts, error) {
	var counts wcCounts
	reader := bufio.NewReader(r)
	inWord := false

	for {
		ru, size, err := reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return counts, fmt.Errorf("reading input: %w", err)
		}

		counts.bytes += int64(size)
		counts.chars++

		if ru == '\n' {
			counts.lines++
		}

		if unicode.IsSpace(ru) {
			inWord = false
		} else if !inWord {
			inWord = true
			counts.words++
		}
	}

	return counts, nil
}

// printCounts writes the selected counts, each right-justified in its own
// field, followed by the source name unless it is standard input.
func (c *wcCommand) printCounts(out *bufio.Writer, counts wcCounts, name string, sel wcSelection) {
	if sel.lines {
		fmt.Fprintf(out, "%*d", c.countWidth, counts.lines)
	}
	if sel.words {
		fmt.Fprintf(out, "%*d", c.countWidth, counts.words)
	}
	switch {
	case sel.bytes:
		fmt.Fprintf(out, "%*d", c.countWidth, counts.bytes)
	case sel.chars:
		fmt.Fprintf(out, "%*d", c.countWidth, counts.chars)
	}

	if name != StdinName {
		fmt.Fprintf(out, " %s", name)
	}
	_ = out.WriteByte('\n') // Sticky bufio error surfaces at Flush
}
