// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors with user-facing remediation hints.
//
// textr uses these errors at the boundaries users can fix themselves: a
// configuration file that does not validate, an input that cannot be opened,
// or an output file that cannot be created.
package issue
