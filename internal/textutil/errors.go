// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"errors"
	"fmt"

	"github.com/textr/textr/pkg/types"
)

var (
	// ErrUsage is wrapped by errors caused by invalid command-line arguments.
	ErrUsage = errors.New("usage error")
	// ErrSourcesFailed is wrapped when one or more sources could not be
	// opened. Each failure has already been reported on stderr.
	ErrSourcesFailed = errors.New("some sources could not be read")
)

// UsageError reports invalid command-line arguments. It matches both
// ErrUsage and the underlying cause with errors.Is.
type UsageError struct {
	Command string
	Err     error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("[textr] %s: %v", e.Command, e.Err)
}

// Unwrap returns ErrUsage and the underlying cause.
func (e *UsageError) Unwrap() []error { return []error{ErrUsage, e.Err} }

// SourcesFailedError reports how many sources of a multi-source command
// could not be opened. It wraps ErrSourcesFailed.
type SourcesFailedError struct {
	Command string
	Failed  int
	Total   int
}

// Error implements the error interface.
func (e *SourcesFailedError) Error() string {
	return fmt.Sprintf("[textr] %s: %d of %d source(s) could not be read", e.Command, e.Failed, e.Total)
}

// Unwrap returns ErrSourcesFailed for errors.Is() compatibility.
func (e *SourcesFailedError) Unwrap() error { return ErrSourcesFailed }

// ExitCodeOf maps a command error to the process exit status.
func ExitCodeOf(err error) types.ExitCode {
	switch {
	case err == nil:
		return types.ExitSuccess
	case errors.Is(err, ErrUsage):
		return types.ExitUsage
	default:
		return types.ExitFailure
	}
}

// wrapError wraps an error with the [textr] prefix format.
// Returns nil if err is nil.
func wrapError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[textr] %s: %w", cmdName, err)
}

// usageError wraps err as a command-line error for cmdName.
func usageError(cmdName string, err error) error {
	return &UsageError{Command: cmdName, Err: err}
}
