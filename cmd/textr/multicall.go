// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
)

// aliasSuffix marks the r-suffixed utility aliases (catr, uniqr, ...).
const aliasSuffix = "r"

// utilityForProgram returns the utility a binary named argv0 stands for,
// or "" when argv0 is not a utility name or alias.
func utilityForProgram(argv0 string, utilities []string) string {
	base := strings.TrimSuffix(filepath.Base(argv0), ".exe")
	for _, name := range utilities {
		if base == name || base == name+aliasSuffix {
			return name
		}
	}
	return ""
}

// resolveArgs returns the cobra arguments for a process started with argv.
// Under a utility name the utility becomes the subcommand.
func resolveArgs(argv []string, utilities []string) []string {
	if len(argv) == 0 {
		return nil
	}
	if name := utilityForProgram(argv[0], utilities); name != "" {
		return append([]string{name}, argv[1:]...)
	}
	return argv[1:]
}
