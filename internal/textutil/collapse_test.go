// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"slices"
	"strings"
	"testing"
)

func collect(lines []string) []Record {
	return slices.Collect(Collapse(slices.Values(lines)))
}

func TestCollapse_Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []Record
	}{
		{
			name:  "adjacent duplicates",
			lines: []string{"a", "a", "b"},
			want:  []Record{{2, "a"}, {1, "b"}},
		},
		{
			name:  "whitespace-only difference keeps first text",
			lines: []string{"a", " a "},
			want:  []Record{{2, "a"}},
		},
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
		{
			name:  "non-adjacent duplicates stay separate",
			lines: []string{"x", "y", "x"},
			want:  []Record{{1, "x"}, {1, "y"}, {1, "x"}},
		},
		{
			name:  "single line",
			lines: []string{"only"},
			want:  []Record{{1, "only"}},
		},
		{
			name:  "representative is first untrimmed line",
			lines: []string{"\tb  ", "b", " b"},
			want:  []Record{{3, "\tb  "}},
		},
		{
			name:  "blank lines form a run",
			lines: []string{"", "  ", "\n", "z"},
			want:  []Record{{3, ""}, {1, "z"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := collect(tt.lines)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Collapse(%q) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestCollapse_Properties(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"a", "a", "a"},
		{"a", "b", "a", "b"},
		{" a", "a ", "A", "a"},
		{"1", "1", "2", "2", "2", "3", "1", "1"},
		{"", "", "x", " x", "x\n", "y"},
	}

	for _, lines := range inputs {
		recs := collect(lines)

		// Mass conservation.
		sum := 0
		for _, r := range recs {
			if r.Count < 1 {
				t.Errorf("%q: record %v has count < 1", lines, r)
			}
			sum += r.Count
		}
		if sum != len(lines) {
			t.Errorf("%q: counts sum to %d, want %d", lines, sum, len(lines))
		}

		// Each record starts at the first line of its run, runs are in input
		// order, and run boundaries follow trimmed equality.
		i := 0
		for _, r := range recs {
			if lines[i] != r.Text {
				t.Errorf("%q: record text %q, want first line of run %q", lines, r.Text, lines[i])
			}
			for j := i + 1; j < i+r.Count; j++ {
				if strings.TrimSpace(lines[j]) != strings.TrimSpace(lines[j-1]) {
					t.Errorf("%q: lines %d and %d differ but share a run", lines, j-1, j)
				}
			}
			next := i + r.Count
			if next < len(lines) && strings.TrimSpace(lines[next]) == strings.TrimSpace(lines[next-1]) {
				t.Errorf("%q: lines %d and %d are equal but split across runs", lines, next-1, next)
			}
			i = next
		}
	}
}

func TestCollapseFunc_FoldKey(t *testing.T) {
	t.Parallel()

	got := slices.Collect(CollapseFunc(slices.Values([]string{"Apple", "apple ", "APPLE", "pear"}), FoldKey))
	want := []Record{{3, "Apple"}, {1, "pear"}}
	if !slices.Equal(got, want) {
		t.Errorf("CollapseFunc(FoldKey) = %v, want %v", got, want)
	}
}

func TestCollapse_StopsEarly(t *testing.T) {
	t.Parallel()

	pulled := 0
	lines := func(yield func(string) bool) {
		for _, l := range []string{"a", "b", "c", "d"} {
			pulled++
			if !yield(l) {
				return
			}
		}
	}

	for rec := range Collapse(lines) {
		if rec.Text == "a" {
			break
		}
	}
	if pulled != 2 {
		t.Errorf("pulled %d lines, want 2 (one to close the first run)", pulled)
	}
}

func TestCollapser_AddFlush(t *testing.T) {
	t.Parallel()

	c := NewCollapser(nil)
	if _, ok := c.Flush(); ok {
		t.Fatal("Flush() on a fresh Collapser should report no run")
	}

	if _, ok := c.Add("x"); ok {
		t.Error("first Add() should not close a run")
	}
	if _, ok := c.Add(" x"); ok {
		t.Error("Add() of an equal line should not close a run")
	}
	closed, ok := c.Add("y")
	if !ok || closed != (Record{2, "x"}) {
		t.Errorf("Add(y) = %v, %v; want {2 x}, true", closed, ok)
	}

	last, ok := c.Flush()
	if !ok || last != (Record{1, "y"}) {
		t.Errorf("Flush() = %v, %v; want {1 y}, true", last, ok)
	}
	if _, ok := c.Flush(); ok {
		t.Error("second Flush() should report no run")
	}
}

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	rec := Record{Count: 12, Text: "line\n"}
	if got := FormatRecord(rec, false, 4); got != "line\n" {
		t.Errorf("FormatRecord(no count) = %q", got)
	}
	if got := FormatRecord(rec, true, 4); got != "  12 line\n" {
		t.Errorf("FormatRecord(count, 4) = %q", got)
	}
	if got := FormatRecord(rec, true, 7); got != "     12 line\n" {
		t.Errorf("FormatRecord(count, 7) = %q", got)
	}
}
