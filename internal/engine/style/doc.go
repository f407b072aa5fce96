// Package style tracks which character ranges of a document carry which
// styles, one manager per style axis.
//
// Each manager owns an interval tree of styled runs and implements
// event.Listener: registered with the buffer's notifier, it rewrites its runs
// on every insertion and deletion so style positions stay consistent with the
// text. Two specializations cover the common cases:
//
//   - BooleanManager for on/off styles (bold, italic), keeping its runs
//     disjoint and non-adjacent
//   - ValueManager for valued styles (color, font size), keeping a partition
//     of ranges by value with adjacent equal values merged
//
// Typical wiring:
//
//	bold := style.NewBooleanManager("bold")
//	notifier.Subscribe(bold)
//
//	bold.Toggle(0, 5)
//	bold.ActiveOverRange(0, 5) // true
//
// Managers are not safe for concurrent use; the owning document serializes
// edits and style calls.
package style
