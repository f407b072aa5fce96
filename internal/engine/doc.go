// Package engine provides the text-storage and style-tracking core for
// draftdoc.
//
// The engine package serves as the main facade, combining a piece-table text
// buffer with per-axis style tracking into a unified, thread-safe API
// suitable for building document editors.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - piecetable: piece-table text buffer (immutable original buffer,
//     append-only add buffer, ordered piece sequence)
//   - interval: augmented red-black interval tree with pruned range queries
//   - style: per-axis run managers kept in sync with buffer edits
//
// Buffer edits are published synchronously through an event.Notifier; every
// style manager rewrites its runs before the mutating call returns, so text
// and styles never disagree between edits. Positions throughout are
// character (rune) offsets.
//
// # Basic Usage
//
// Create a document and perform edits:
//
//	d := engine.New(engine.WithContent("Hello World"))
//
//	d.Insert(11, "!")  // "Hello World!"
//	d.Delete(5, 6)     // "Hello!"
//
//	d.ToggleStyle("bold", 0, 5)
//	on, _ := d.StyleActiveOverRange("bold", 0, 5) // true
//
//	d.SetStyleValue("color", 0, 5, "#ff0000")
//	c, ok, _ := d.StyleValueAt("color", 2) // "#ff0000", true
//
// # Configuration
//
// The tracked style axes come from the configuration; the defaults declare
// bold, italic, and underline as on/off axes and color as a valued axis:
//
//	cfg, _ := config.Load("draftdoc.toml")
//	d := engine.New(engine.WithConfig(cfg))
//
// Axes can also be added after creation with AddBooleanStyle and
// AddValueStyle.
//
// # Error Handling
//
// Mutations validate strictly: an out-of-bounds insert, delete, or style
// range returns an error and changes nothing. Read paths are lenient:
// out-of-bounds text or run queries log a warning and return empty results,
// since they run continuously during interactive use.
package engine
