// SPDX-License-Identifier: MPL-2.0

// Package shell runs POSIX shell scripts with the embedded mvdan/sh interpreter.
//
// External commands are resolved through an exec handler middleware: names
// registered in a textutil.Registry run in-process, everything else falls
// back to host binaries. A registered built-in that fails does not fall back.
//
// Interpreter built-ins such as echo and test are handled by mvdan/sh itself
// and never reach the exec handler.
package shell
