// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// StdinName is the source name that selects standard input.
const StdinName = "-"

// SourceProcessor processes a single opened source.
// Parameters:
//   - r: the input stream to process
//   - name: the source argument as given ("-" for stdin)
//   - index: 0-based index of the source
//   - total: total number of sources named on the command line
type SourceProcessor func(r io.Reader, name string, index, total int) error

// OpenSource opens a named source for reading. "-" yields hc.Stdin, which
// is never closed by the returned ReadCloser. Relative paths are resolved
// against hc.Dir.
func OpenSource(hc *HandlerContext, name string) (io.ReadCloser, error) {
	if name == StdinName {
		return io.NopCloser(hc.Stdin), nil
	}

	path := name
	if !filepath.IsAbs(path) && hc.Dir != "" {
		path = filepath.Join(hc.Dir, path)
	}
	return os.Open(path)
}

// ProcessSources runs processor over each named source in order, or over
// standard input when names is empty.
//
// A source that cannot be opened is reported on hc.Stderr as
// "[textr] <cmd>: <name>: <cause>" and skipped; once every source has been
// visited a *SourcesFailedError is returned. An error from processor is
// fatal: it is returned immediately, prefixed with the command and source
// name.
//
// Example usage (head command):
//
//	return ProcessSources(hc, c.name, fs.Args(),
//	    func(r io.Reader, name string, index, total int) error {
//	        if total > 1 {
//	            writeHeader(out, name, index)
//	        }
//	        return c.headLines(out, r, n)
//	    })
func ProcessSources(hc *HandlerContext, cmdName string, names []string, processor SourceProcessor) error {
	if len(names) == 0 {
		names = []string{StdinName}
	}

	total := len(names)
	failed := 0
	for i, name := range names {
		rc, err := OpenSource(hc, name)
		if err != nil {
			failed++
			fmt.Fprintln(hc.Stderr, wrapError(cmdName, fmt.Errorf("%s: %w", name, openCause(err))))
			continue
		}
		if err := processSource(rc, func(r io.Reader) error {
			return processor(r, name, i, total)
		}); err != nil {
			return wrapError(cmdName, fmt.Errorf("%s: %w", name, err))
		}
	}

	if failed > 0 {
		return &SourcesFailedError{Command: cmdName, Failed: failed, Total: total}
	}
	return nil
}

// processSource calls fn and closes rc, aggregating the close error via
// named return when fn succeeded.
func processSource(rc io.ReadCloser, fn func(r io.Reader) error) (err error) {
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(rc)
}

// openCause strips the *fs.PathError wrapper so diagnostics name the source
// exactly as the user typed it.
func openCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
