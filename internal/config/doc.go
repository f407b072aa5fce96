// Package config loads the document engine's TOML configuration and watches
// it for changes.
//
// A configuration file declares logging, buffer tuning, and the style axes a
// document tracks:
//
//	[logging]
//	level = "info"
//
//	[editor]
//	merge_add_pieces = true
//
//	[styles.bold]
//	kind = "boolean"
//
//	[styles.color]
//	kind = "value"
//
// Load falls back to Default when the file is missing; Watcher reloads the
// file on change with debouncing, keeping the previous configuration when a
// reload fails to parse.
package config
