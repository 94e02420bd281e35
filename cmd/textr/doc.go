// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for textr.
//
// This package implements the Cobra command hierarchy for the textr CLI:
// one subcommand per text utility, the embedded shell, configuration
// management and the bundled reference docs. When the binary is invoked
// under a utility name (cat, uniq, ...) or its r-suffixed alias (catr,
// uniqr, ...), it behaves as that utility.
package cmd
