// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover fixture files (WriteFile, WriteFiles), the working directory
// (MustChdir) and the home directory (SetHomeDir).
package testutil
