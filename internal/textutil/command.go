// SPDX-License-Identifier: MPL-2.0

package textutil

import "context"

type (
	// Command defines the interface for textr utility implementations.
	Command interface {
		// Name returns the command name (e.g., "cat", "uniq").
		Name() string

		// Synopsis returns a one-line description used in help output.
		Synopsis() string

		// UsageLine returns the argument synopsis without the command name
		// (e.g., "[-c] [IN_FILE [OUT_FILE]]").
		UsageLine() string

		// Run executes the command with the given context and arguments.
		// The context carries the HandlerContext with stdin/stdout/stderr.
		// args[0] is the command name, args[1:] are the arguments.
		// Returns nil on success, or an error prefixed with "[textr] <cmd>:".
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the flags this implementation accepts.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a supported flag for a command.
	FlagInfo struct {
		// Name is the long flag name without dashes (e.g., "count").
		Name string
		// ShortName is the single-character alias (e.g., "c").
		// Empty if no short form exists.
		ShortName string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value (e.g., -n 10).
		TakesValue bool
	}

	// commandInfo carries the static description shared by every command.
	commandInfo struct {
		name      string
		synopsis  string
		usageLine string
		flags     []FlagInfo
	}
)

// Name returns the command name.
func (c *commandInfo) Name() string {
	return c.name
}

// Synopsis returns the one-line description.
func (c *commandInfo) Synopsis() string {
	return c.synopsis
}

// UsageLine returns the argument synopsis.
func (c *commandInfo) UsageLine() string {
	return c.usageLine
}

// SupportedFlags returns the flags supported by this command.
func (c *commandInfo) SupportedFlags() []FlagInfo {
	return c.flags
}
