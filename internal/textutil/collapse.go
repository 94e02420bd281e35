// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"fmt"
	"iter"
	"strings"
)

type (
	// Record is one collapsed run: how many adjacent lines it covered and the
	// original text of its first line.
	Record struct {
		Count int
		Text  string
	}

	// KeyFunc derives the value lines are compared by.
	KeyFunc func(line string) string

	// Collapser groups adjacent lines with equal keys into runs. It holds at
	// most one open run.
	Collapser struct {
		key    KeyFunc
		runKey string
		run    Record
	}
)

// TrimKey compares lines with leading and trailing whitespace removed.
func TrimKey(line string) string {
	return strings.TrimSpace(line)
}

// FoldKey compares lines trimmed and case-folded.
func FoldKey(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// NewCollapser creates a Collapser comparing lines by key, or by TrimKey
// when key is nil.
func NewCollapser(key KeyFunc) *Collapser {
	if key == nil {
		key = TrimKey
	}
	return &Collapser{key: key}
}

// Add feeds the next line. If line starts a new run, the run it closes is
// returned with ok set.
func (c *Collapser) Add(line string) (closed Record, ok bool) {
	k := c.key(line)
	if c.run.Count > 0 && k == c.runKey {
		c.run.Count++
		return Record{}, false
	}

	closed, ok = c.run, c.run.Count > 0
	c.runKey = k
	c.run = Record{Count: 1, Text: line}
	return closed, ok
}

// Flush closes the open run. ok is false when no line was added since the
// last Flush.
func (c *Collapser) Flush() (closed Record, ok bool) {
	if c.run.Count == 0 {
		return Record{}, false
	}
	closed = c.run
	c.run = Record{}
	c.runKey = ""
	return closed, true
}

// Collapse returns the runs of lines under TrimKey comparison.
func Collapse(lines iter.Seq[string]) iter.Seq[Record] {
	return CollapseFunc(lines, TrimKey)
}

// CollapseFunc returns the runs of lines compared by key. The input is
// consumed lazily, one line per step.
func CollapseFunc(lines iter.Seq[string], key KeyFunc) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		c := NewCollapser(key)
		for line := range lines {
			if rec, ok := c.Add(line); ok {
				if !yield(rec) {
					return
				}
			}
		}
		if rec, ok := c.Flush(); ok {
			yield(rec)
		}
	}
}

// FormatRecord renders rec as uniq prints it: the text alone, or with the
// count right-justified in a field of width followed by one space.
func FormatRecord(rec Record, showCount bool, width int) string {
	if !showCount {
		return rec.Text
	}
	return fmt.Sprintf("%*d %s", width, rec.Count, rec.Text)
}
