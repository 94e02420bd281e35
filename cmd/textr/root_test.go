// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/textr/textr/internal/config"
	"github.com/textr/textr/internal/issue"
	"github.com/textr/textr/internal/textutil"
	"github.com/textr/textr/pkg/types"
)

// staticProvider returns a fixed configuration without touching the filesystem.
type staticProvider struct {
	cfg *config.Config
	err error
}

func (p staticProvider) Load(context.Context, config.LoadOptions) (*config.Config, string, error) {
	if p.err != nil {
		return nil, "", p.err
	}
	return p.cfg, "", nil
}

type runResult struct {
	code   types.ExitCode
	stdout string
	stderr string
}

func runCLI(t *testing.T, provider config.Provider, stdin string, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), append([]string{"textr"}, args...), Dependencies{
		Config: provider,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func defaultProvider() config.Provider {
	return staticProvider{cfg: config.DefaultConfig()}
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: mutates the package-level build variables.
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "v1.2.0", "abc123", "2026-01-02"
	if got, want := getVersionString(), "v1.2.0 (commit: abc123, built: 2026-01-02)"; got != want {
		t.Errorf("getVersionString() = %q, want %q", got, want)
	}
}

func TestRun_Utilities(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("a\n a \nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantCode   types.ExitCode
		wantStdout string
		wantStderr string
	}{
		{
			name:       "uniq counts from stdin",
			stdin:      "x\nx\ny\n",
			args:       []string{"uniq", "-c"},
			wantStdout: "   2 x\n   1 y\n",
		},
		{
			name:       "uniq file",
			args:       []string{"uniq", input},
			wantStdout: "a\nb\n",
		},
		{
			name:       "echo",
			args:       []string{"echo", "-n", "a", "b"},
			wantStdout: "a b",
		},
		{
			name:       "head usage error",
			args:       []string{"head", "-n", "0"},
			wantCode:   types.ExitUsage,
			wantStderr: "[textr] head: illegal line count -- 0\n",
		},
		{
			name:       "cat missing file is reported once",
			args:       []string{"cat", missing, input},
			wantCode:   types.ExitFailure,
			wantStdout: "a\n a \nb\n",
			wantStderr: "[textr] cat: " + missing + ": no such file or directory\n",
		},
		{
			name:       "root verbose flag before the utility name",
			stdin:      "q\n",
			args:       []string{"-v", "wc", "-l"},
			wantStdout: "       1\n",
		},
		{
			name:     "short flag after the utility name is the utility's",
			stdin:    "q\n",
			args:     []string{"wc", "-v"},
			wantCode: types.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, defaultProvider(), tt.stdin, tt.args...)
			if res.code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", res.code, tt.wantCode, res.stderr)
			}
			if res.stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && res.stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", res.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_ConfiguredWidths(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Uniq.CountWidth = 6

	res := runCLI(t, staticProvider{cfg: cfg}, "a\na\n", "uniq", "-c")
	if res.code != types.ExitSuccess {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	if want := "     2 a\n"; res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}
}

func TestRun_ConfigLoadFailureFallsBack(t *testing.T) {
	t.Parallel()

	loadErr := issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		Wrap(errors.New("uniq.count_width: invalid value 0")).
		BuildError()

	res := runCLI(t, staticProvider{err: loadErr}, "a\na\n", "uniq", "-c")
	if res.code != types.ExitSuccess {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	if want := "   2 a\n"; res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}
	if !strings.Contains(res.stderr, "Warning") || !strings.Contains(res.stderr, "failed to load configuration") {
		t.Errorf("stderr = %q, want a configuration warning", res.stderr)
	}
}

func TestRun_Shell(t *testing.T) {
	t.Parallel()

	res := runCLI(t, defaultProvider(), "k\nk\nl\n", "sh", "-c", "uniq -c | head -n 1")
	if res.code != types.ExitSuccess {
		t.Fatalf("exit code = %d, stderr %q", res.code, res.stderr)
	}
	if want := "   2 k\n"; res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}

	res = runCLI(t, defaultProvider(), "", "sh", "-c", "exit 5")
	if res.code != 5 {
		t.Errorf("exit code = %d, want 5", res.code)
	}
	if res.stderr != "" {
		t.Errorf("stderr = %q, want empty", res.stderr)
	}

	res = runCLI(t, defaultProvider(), "", "sh")
	if res.code != types.ExitUsage {
		t.Errorf("exit code = %d, want %d", res.code, types.ExitUsage)
	}
}

func TestRun_Docs(t *testing.T) {
	t.Parallel()

	for _, topic := range docTopics() {
		res := runCLI(t, defaultProvider(), "", "docs", "--plain", topic)
		if res.code != types.ExitSuccess {
			t.Errorf("docs %s: exit code = %d, stderr %q", topic, res.code, res.stderr)
			continue
		}
		if !strings.HasPrefix(res.stdout, "# "+topic+"\n") {
			t.Errorf("docs %s: output starts with %q", topic, firstLine(res.stdout))
		}
	}

	res := runCLI(t, defaultProvider(), "", "docs", "nope")
	if res.code != types.ExitUsage {
		t.Errorf("exit code = %d, want %d", res.code, types.ExitUsage)
	}
	if !strings.Contains(res.stderr, `no reference for "nope"`) {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestDocTopicsCoverUtilities(t *testing.T) {
	t.Parallel()

	topics := docTopics()
	for _, name := range textutil.NewBuiltinRegistry(textutil.DefaultOptions()).Names() {
		if !slices.Contains(topics, name) {
			t.Errorf("no docs page for utility %q", name)
		}
	}
}

func TestSplitRootFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		argv     []string
		args     []string
		wantRoot []string
		wantRest []string
	}{
		{
			name:     "no root flags",
			argv:     []string{"uniq", "-c", "in.txt"},
			args:     []string{"-c", "in.txt"},
			wantRest: []string{"-c", "in.txt"},
		},
		{
			name:     "verbose before the name",
			argv:     []string{"-v", "head", "-n", "2"},
			args:     []string{"-v", "-n", "2"},
			wantRoot: []string{"-v"},
			wantRest: []string{"-n", "2"},
		},
		{
			name:     "config with value",
			argv:     []string{"--config", "c.cue", "wc", "x"},
			args:     []string{"--config", "c.cue", "x"},
			wantRoot: []string{"--config", "c.cue"},
			wantRest: []string{"x"},
		},
		{
			name:     "short flag after the name belongs to the utility",
			argv:     []string{"uniq", "-v", "x"},
			args:     []string{"-v", "x"},
			wantRest: []string{"-v", "x"},
		},
		{
			name:     "long flag after the name belongs to the utility",
			argv:     []string{"cat", "--verbose"},
			args:     []string{"--verbose"},
			wantRest: []string{"--verbose"},
		},
		{
			name:     "operand equal to the name",
			argv:     []string{"cat", "cat"},
			args:     []string{"cat"},
			wantRest: []string{"cat"},
		},
		{
			name:     "command line unknown",
			args:     []string{"-v", "x"},
			wantRest: []string{"-v", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name := "uniq"
			if len(tt.argv) > 0 {
				name = tt.argv[len(tt.wantRoot)]
			}
			root, rest := splitRootFlags(tt.argv, name, tt.args)
			if !slices.Equal(root, tt.wantRoot) {
				t.Errorf("root = %q, want %q", root, tt.wantRoot)
			}
			if !slices.Equal(rest, tt.wantRest) {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestUtilityExitError(t *testing.T) {
	t.Parallel()

	if utilityExitError(nil) != nil {
		t.Error("utilityExitError(nil) should be nil")
	}

	var exitErr *ExitError

	failed := utilityExitError(&textutil.SourcesFailedError{Command: "cat", Failed: 1, Total: 2})
	if !errors.As(failed, &exitErr) || exitErr.Code != types.ExitFailure || exitErr.Err != nil {
		t.Errorf("sources failed = %#v, want silent ExitError with code 1", failed)
	}

	usage := utilityExitError(&textutil.UsageError{Command: "head", Err: errors.New("bad")})
	if !errors.As(usage, &exitErr) || exitErr.Code != types.ExitUsage {
		t.Errorf("usage = %#v, want ExitError with code 2", usage)
	}
	if !errors.Is(usage, textutil.ErrUsage) {
		t.Error("usage ExitError should unwrap to textutil.ErrUsage")
	}

	ioErr := utilityExitError(fmt.Errorf("[textr] wc: reading input: %w", os.ErrClosed))
	if !errors.As(ioErr, &exitErr) || exitErr.Code != types.ExitFailure || exitErr.Err == nil {
		t.Errorf("io = %#v, want ExitError with code 1 and cause", ioErr)
	}
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	actionable := issue.NewErrorContext().
		WithOperation("read script").
		WithResource("s.sh").
		WithSuggestion("Check the path").
		Wrap(errors.New("no such file or directory")).
		Build()

	tests := []struct {
		name      string
		err       error
		verbose   bool
		want      string
		wantEmpty bool
	}{
		{name: "silent exit error", err: &ExitError{Code: types.ExitFailure}, wantEmpty: true},
		{name: "exit error with cause", err: &ExitError{Code: 2, Err: errors.New("[textr] head: bad")}, want: "[textr] head: bad\n"},
		{name: "plain error", err: errors.New("unknown flag: --x"), want: "unknown flag: --x"},
		{name: "actionable verbose", err: &ExitError{Code: 1, Err: actionable}, verbose: true, want: "Check the path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printError(&buf, tt.err, tt.verbose)
			got := buf.String()
			switch {
			case tt.wantEmpty && got != "":
				t.Errorf("printError() wrote %q, want nothing", got)
			case !tt.wantEmpty && !strings.Contains(got, tt.want):
				t.Errorf("printError() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	if got := (&ExitError{Code: 3}).Error(); got != "exit status 3" {
		t.Errorf("Error() = %q", got)
	}
	cause := errors.New("boom")
	err := &ExitError{Code: 1, Err: cause}
	if err.Error() != "boom" || !errors.Is(err, cause) {
		t.Errorf("ExitError should report and unwrap its cause")
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
