// Package piecetable implements the document text buffer as a piece table:
// an immutable original buffer, an append-only add buffer, and an ordered
// sequence of pieces referencing slices of either buffer.
//
// The piece table makes insertion and deletion cheap anywhere in the
// document: edits splice and split pieces instead of moving text. Arbitrary
// sub-ranges materialize by touching only the overlapping pieces.
//
// After every successful mutation the table publishes an event.Edit to its
// notifier, synchronously, so style run managers can rewrite their interval
// trees before control returns to the caller.
//
// Basic usage:
//
//	pt := piecetable.New("Hello World")
//	pt.Insert(11, "!")        // "Hello World!"
//	pt.Delete(5, 6)           // "Hello!"
//	text := pt.Text()
//
// Error behavior is two-tier: mutations with invalid positions return
// ErrPositionOutOfRange, while read paths (RangeText) degrade to empty
// results with a logged warning, matching interactive-editor tolerance.
package piecetable
