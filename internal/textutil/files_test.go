// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/textr/textr/pkg/types"
)

func TestProcessSources_DefaultsToStdin(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(t, t.TempDir(), "from stdin")
	hc := GetHandlerContext(ctx)

	var got string
	err := ProcessSources(hc, "test", nil, func(r io.Reader, name string, index, total int) error {
		if name != StdinName || index != 0 || total != 1 {
			t.Errorf("processor called with (%q, %d, %d)", name, index, total)
		}
		data, err := io.ReadAll(r)
		got = string(data)
		return err
	})
	if err != nil {
		t.Fatalf("ProcessSources() returned error: %v", err)
	}
	if got != "from stdin" {
		t.Errorf("read %q, want %q", got, "from stdin")
	}
}

func TestProcessSources_RelativeToDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "A")
	ctx, _ := newTestContext(t, dir, "")

	var got []string
	err := ProcessSources(GetHandlerContext(ctx), "test", []string{"a.txt"}, func(r io.Reader, _ string, _, _ int) error {
		data, err := io.ReadAll(r)
		got = append(got, string(data))
		return err
	})
	if err != nil {
		t.Fatalf("ProcessSources() returned error: %v", err)
	}
	if !slices.Equal(got, []string{"A"}) {
		t.Errorf("read %q", got)
	}
}

func TestProcessSources_ContinuesAfterOpenFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "B")
	ctx, tio := newTestContext(t, dir, "")

	var seen []string
	err := ProcessSources(GetHandlerContext(ctx), "test", []string{"missing.txt", "b.txt"}, func(_ io.Reader, name string, _, _ int) error {
		seen = append(seen, name)
		return nil
	})

	if !errors.Is(err, ErrSourcesFailed) {
		t.Fatalf("ProcessSources() = %v, want ErrSourcesFailed", err)
	}
	var sfe *SourcesFailedError
	if !errors.As(err, &sfe) || sfe.Failed != 1 || sfe.Total != 2 {
		t.Errorf("unexpected SourcesFailedError: %#v", sfe)
	}
	if !slices.Equal(seen, []string{"b.txt"}) {
		t.Errorf("processed %v, want [b.txt]", seen)
	}
	if got, want := tio.stderr.String(), "[textr] test: missing.txt: no such file or directory\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if ExitCodeOf(err) != types.ExitFailure {
		t.Errorf("ExitCodeOf() = %v, want 1", ExitCodeOf(err))
	}
}

func TestProcessSources_ProcessorErrorIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "")
	writeFile(t, dir, "b.txt", "")
	ctx, _ := newTestContext(t, dir, "")

	calls := 0
	boom := errors.New("boom")
	err := ProcessSources(GetHandlerContext(ctx), "test", []string{"a.txt", "b.txt"}, func(io.Reader, string, int, int) error {
		calls++
		return boom
	})

	if !errors.Is(err, boom) {
		t.Fatalf("ProcessSources() = %v, want %v", err, boom)
	}
	if err.Error() != "[textr] test: a.txt: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if calls != 1 {
		t.Errorf("processor called %d times, want 1", calls)
	}
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{"nil", nil, types.ExitSuccess},
		{"usage", usageError("x", errors.New("bad flag")), types.ExitUsage},
		{"wrapped usage", fmt.Errorf("outer: %w", usageError("x", errors.New("bad"))), types.ExitUsage},
		{"sources failed", &SourcesFailedError{Command: "x", Failed: 1, Total: 1}, types.ExitFailure},
		{"other", errors.New("write failed"), types.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExitCodeOf(tt.err); got != tt.want {
				t.Errorf("ExitCodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUsageError_Message(t *testing.T) {
	t.Parallel()

	cause := errors.New("illegal line count -- 0")
	err := usageError("head", cause)
	if err.Error() != "[textr] head: illegal line count -- 0" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrUsage) || !errors.Is(err, cause) {
		t.Error("UsageError should match ErrUsage and its cause")
	}
	if strings.Contains(err.Error(), ErrUsage.Error()) {
		t.Error("message should not repeat the sentinel text")
	}
}
