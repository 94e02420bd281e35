// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/textr/config.cue (~/.config/textr on Linux,
// ~/Library/Application Support/textr on macOS, %APPDATA%\textr on Windows), from an
// explicit --config path, or from ./config.cue. Every key can be overridden by a TEXTR_*
// environment variable, with dots replaced by underscores (TEXTR_UNIQ_COUNT_WIDTH).
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
