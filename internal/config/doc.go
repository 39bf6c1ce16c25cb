// Package config resolves monigrid's runtime settings.
//
// # Resolution Order
//
// Every setting is resolved from, highest priority first:
//
//  1. Command line flags (Overrides; nil means "not given")
//  2. The TOML config file, ~/.config/monigrid/config.toml unless -config is set
//  3. Built-in defaults
//
// A missing config file is not an error. An unreadable or unparsable one is.
//
// # Default Values
//
//   - padding_x: 1 (blank columns to the right of each pane but the last column)
//   - padding_y: 0 (blank rows below each pane but the last row)
//   - refresh_seconds: 0.1
//   - colors: titles black on white, content white on black
//
// # TOML Format
//
//	padding_x = 2
//	padding_y = 1
//	refresh_seconds = 0.5
//
//	[colors]
//	title_fg = "0"
//	title_bg = "#FFD700"
//	content_fg = "252"
//	content_bg = "0"
//
// Colors are lipgloss color strings: an ANSI index ("0"-"255") or a hex value.
//
// # Validation
//
// Negative paddings are clamped to zero, matching the command line. A refresh
// interval that is not a positive, finite number of seconds, an empty file
// list, or an empty file path is a *ConfigError. Callers surface it before
// the terminal is taken over.
package config
