package piecetable

import "fmt"

// Source identifies which backing buffer a piece references.
type Source uint8

const (
	// SourceOriginal references the immutable original buffer.
	SourceOriginal Source = iota

	// SourceAdd references the append-only add buffer.
	SourceAdd
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceOriginal:
		return "original"
	case SourceAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Piece references a contiguous slice of one backing buffer. The ordered
// piece sequence of a Table concatenates to the current document text.
type Piece struct {
	// Source selects the backing buffer.
	Source Source

	// Offset is the start of the slice within the backing buffer.
	Offset int

	// Length is the number of characters in the slice.
	Length int
}

// String returns a human-readable representation of the piece.
func (p Piece) String() string {
	return fmt.Sprintf("%s[%d:%d]", p.Source, p.Offset, p.Offset+p.Length)
}

// end returns the offset one past the last character in the backing buffer.
func (p Piece) end() int {
	return p.Offset + p.Length
}
