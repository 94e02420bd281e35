// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// LineReader decodes a stream into lines that keep their "\n" terminator.
//
// A final fragment without a terminator is a line of its own; the empty
// fragment after a trailing terminator is not. "a\n" is one line and
// "a\n\n" is two.
type LineReader struct {
	r   *bufio.Reader
	err error
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Lines yields each line in order. Iteration stops at the first read error,
// which Err then reports.
func (lr *LineReader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, err := lr.r.ReadString('\n')
			if line != "" && !yield(line) {
				return
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					lr.err = fmt.Errorf("reading input: %w", err)
				}
				return
			}
		}
	}
}

// Err returns the read error that ended iteration, if any.
func (lr *LineReader) Err() error {
	return lr.err
}

// chomp removes a trailing "\n" or "\r\n".
func chomp(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
