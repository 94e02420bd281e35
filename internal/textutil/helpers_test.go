// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/textr/textr/internal/testutil"
)

// testIO captures the streams handed to a command under test.
type testIO struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// newTestContext returns a context carrying a HandlerContext rooted at dir
// with stdin as standard input.
func newTestContext(t *testing.T, dir, stdin string) (context.Context, *testIO) {
	t.Helper()

	tio := &testIO{}
	ctx := WithHandlerContext(t.Context(), &HandlerContext{
		Stdin:     strings.NewReader(stdin),
		Stdout:    &tio.stdout,
		Stderr:    &tio.stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
	})
	return ctx, tio
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	return testutil.WriteFile(t, dir, name, content)
}

// errDiskFull is returned by failingWriter.
var errDiskFull = errors.New("disk full")

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }
