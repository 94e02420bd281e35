// SPDX-License-Identifier: MPL-2.0

// Package textutil implements textr's line-oriented text utilities.
//
// The package provides five commands, each registered by name in a Registry:
//   - cat: Concatenate sources, optionally numbering lines (-n, -b)
//   - echo: Print arguments separated by spaces (-n omits the newline)
//   - head: Output the first lines (-n) or bytes (-c) of each source
//   - uniq: Collapse adjacent duplicate lines, optionally with counts (-c)
//   - wc: Count lines, words, bytes and characters (-l, -w, -c, -m)
//
// Commands receive their standard streams and working directory through a
// HandlerContext stored in the context. The same commands run from the
// textr CLI and as built-ins inside the embedded shell.
//
// # Sources
//
// A source is a file path or "-" for standard input. Relative paths are
// resolved against HandlerContext.Dir. Utilities that accept several sources
// report a source that cannot be opened on stderr as "<name>: <cause>" and
// carry on with the rest; the command then returns an error wrapping
// ErrSourcesFailed so the caller can exit non-zero without printing the
// diagnostic twice. uniq reads a single source and aborts instead.
//
// # Error Format
//
// Errors returned by commands are prefixed with "[textr] <cmd>:":
//
//	[textr] head: illegal line count -- 0
//	[textr] uniq: reading input: unexpected EOF
//
// Command-line errors wrap ErrUsage.
//
// # Collapsing
//
// Collapser implements the run-length scan behind uniq. Two lines belong to
// the same run when their whitespace-trimmed forms are equal; each run is
// emitted once as a Record holding the run length and the first line's
// original text.
package textutil
