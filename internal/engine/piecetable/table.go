package piecetable

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Sebkah/99draft-sub000/internal/event"
	"github.com/Sebkah/99draft-sub000/internal/logging"
)

// Errors returned by table operations.
var (
	// ErrPositionOutOfRange indicates a position outside the valid document range.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrInvalidPiece indicates a piece that does not reference a valid buffer slice.
	ErrInvalidPiece = errors.New("invalid piece")
)

// Table is a piece-table text buffer: an immutable original buffer, an
// append-only add buffer, and an ordered piece sequence describing the
// current document. Positions are character (rune) offsets.
//
// A Table is not safe for concurrent use; the owning document serializes
// access to it.
type Table struct {
	original []rune
	add      []rune
	pieces   []Piece
	length   int
	version  uint64

	documentID string
	notifier   *event.Notifier
	logger     *log.Logger
	mergeAdd   bool
}

// Option configures a Table during creation.
type Option func(*Table)

// WithNotifier sets the notifier edits are published to.
// By default the table creates its own.
func WithNotifier(n *event.Notifier) Option {
	return func(t *Table) {
		if n != nil {
			t.notifier = n
		}
	}
}

// WithLogger sets the logger used for soft warnings on read paths.
func WithLogger(l *log.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithDocumentID stamps published edits with the owning document's ID.
func WithDocumentID(id string) Option {
	return func(t *Table) {
		t.documentID = id
	}
}

// WithoutAddMerge disables folding of contiguous add-buffer pieces.
// Merging is on by default; disabling it is a diagnostic aid, as it makes
// the piece sequence mirror the edit history one piece per insertion.
func WithoutAddMerge() Option {
	return func(t *Table) {
		t.mergeAdd = false
	}
}

// New creates a table holding the given initial text.
func New(text string, opts ...Option) *Table {
	t := &Table{
		original: []rune(text),
		mergeAdd: true,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.notifier == nil {
		t.notifier = event.NewNotifier()
	}
	if t.logger == nil {
		t.logger = logging.Default()
	}

	if len(t.original) > 0 {
		t.pieces = []Piece{{Source: SourceOriginal, Offset: 0, Length: len(t.original)}}
		t.length = len(t.original)
	}

	return t
}

// NewFromReader creates a table from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(string(data), opts...), nil
}

// Len returns the current document length in characters.
func (t *Table) Len() int {
	return t.length
}

// Version returns the mutation counter. It increments on every successful
// Insert or Delete, so layout code can poll it to skip recomputation.
func (t *Table) Version() uint64 {
	return t.version
}

// Notifier returns the notifier edits are published to.
func (t *Table) Notifier() *event.Notifier {
	return t.notifier
}

// Pieces returns a snapshot of the piece sequence, valid until the next mutation.
func (t *Table) Pieces() []Piece {
	pieces := make([]Piece, len(t.pieces))
	copy(pieces, t.pieces)
	return pieces
}

// Insert inserts text at the given position.
// Position must be within [0, Len()]; inserting empty text is a no-op.
func (t *Table) Insert(position int, text string) error {
	if position < 0 || position > t.length {
		return fmt.Errorf("insert at %d in document of length %d: %w", position, t.length, ErrPositionOutOfRange)
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	addOffset := len(t.add)
	t.add = append(t.add, runes...)
	newPiece := Piece{Source: SourceAdd, Offset: addOffset, Length: len(runes)}

	if len(t.pieces) == 0 {
		t.pieces = append(t.pieces, newPiece)
	} else {
		idx, off, _ := t.findPiece(position)
		p := t.pieces[idx]
		switch {
		case off == p.Length:
			// Boundary after piece idx; covers insertion at document end.
			t.insertPieceAt(idx+1, newPiece)
			t.mergeAround(idx + 1)
		case off == 0:
			t.insertPieceAt(idx, newPiece)
			t.mergeAround(idx)
		default:
			// Split the piece around the insertion point.
			before := Piece{Source: p.Source, Offset: p.Offset, Length: off}
			after := Piece{Source: p.Source, Offset: p.Offset + off, Length: p.Length - off}
			t.pieces[idx] = before
			t.insertPieceAt(idx+1, newPiece)
			t.insertPieceAt(idx+2, after)
			t.mergeAround(idx + 1)
		}
	}

	t.length += len(runes)
	t.version++
	t.notifier.Publish(event.Edit{
		Kind:     event.KindInsertion,
		Position: position,
		Length:   len(runes),
		Document: t.documentID,
		Version:  t.version,
	})
	return nil
}

// Delete removes count characters starting at start.
// Start must be within [0, Len()); count is clamped to the document end and
// a non-positive count is a warned no-op.
func (t *Table) Delete(start, count int) error {
	if start < 0 || start >= t.length {
		return fmt.Errorf("delete at %d in document of length %d: %w", start, t.length, ErrPositionOutOfRange)
	}
	if count <= 0 {
		t.logger.Warn("delete of non-positive length ignored",
			logging.FieldStart, start, logging.FieldCount, count)
		return nil
	}
	if start+count > t.length {
		count = t.length - start
	}

	startIdx, startOff, _ := t.findPiece(start)
	endIdx, endOff, _ := t.findPiece(start + count)

	if startIdx == endIdx {
		p := t.pieces[startIdx]
		switch {
		case startOff == 0 && endOff == p.Length:
			t.pieces = append(t.pieces[:startIdx], t.pieces[startIdx+1:]...)
		case startOff == 0:
			t.pieces[startIdx].Offset += endOff
			t.pieces[startIdx].Length -= endOff
		case endOff == p.Length:
			t.pieces[startIdx].Length = startOff
		default:
			// Deleted range is interior; split into prefix and suffix.
			prefix := Piece{Source: p.Source, Offset: p.Offset, Length: startOff}
			suffix := Piece{Source: p.Source, Offset: p.Offset + endOff, Length: p.Length - endOff}
			t.pieces[startIdx] = prefix
			t.insertPieceAt(startIdx+1, suffix)
		}
	} else {
		kept := make([]Piece, 0, len(t.pieces))
		kept = append(kept, t.pieces[:startIdx]...)
		if startOff > 0 {
			p := t.pieces[startIdx]
			p.Length = startOff
			kept = append(kept, p)
		}
		if endOff < t.pieces[endIdx].Length {
			p := t.pieces[endIdx]
			p.Offset += endOff
			p.Length -= endOff
			kept = append(kept, p)
		}
		kept = append(kept, t.pieces[endIdx+1:]...)
		t.pieces = kept
	}

	t.length -= count
	t.version++
	t.notifier.Publish(event.Edit{
		Kind:     event.KindDeletion,
		Position: start,
		Length:   count,
		Document: t.documentID,
		Version:  t.version,
	})
	return nil
}

// Text returns the full document content.
func (t *Table) Text() string {
	var sb strings.Builder
	sb.Grow(t.length)
	for _, p := range t.pieces {
		sb.WriteString(string(t.slice(p)))
	}
	return sb.String()
}

// RangeText materializes only the pieces overlapping [start, start+length).
// An invalid range returns "" with a warning rather than an error: range
// reads happen continuously during rendering and must never abort the session.
func (t *Table) RangeText(start, length int) string {
	if start < 0 || length < 0 || start+length > t.length {
		t.logger.Warn("range text query outside document bounds",
			logging.FieldStart, start,
			logging.FieldLength, length,
			logging.FieldCount, t.length)
		return ""
	}
	if length == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(length)
	end := start + length
	cumulative := 0
	for _, p := range t.pieces {
		pStart := cumulative
		pEnd := cumulative + p.Length
		cumulative = pEnd

		if pEnd <= start {
			continue
		}
		if pStart >= end {
			break
		}

		lo := max(start, pStart) - pStart
		hi := min(end, pEnd) - pStart
		sb.WriteString(string(t.slice(p)[lo:hi]))
	}
	return sb.String()
}

// PieceText returns the text a piece references.
func (t *Table) PieceText(p Piece) (string, error) {
	buf := t.original
	if p.Source == SourceAdd {
		buf = t.add
	}
	if p.Offset < 0 || p.Length < 0 || p.end() > len(buf) {
		return "", fmt.Errorf("piece %v exceeds %s buffer of length %d: %w", p, p.Source, len(buf), ErrInvalidPiece)
	}
	return string(buf[p.Offset:p.end()]), nil
}

// findPiece locates the piece containing position, returning the piece index
// and the offset within that piece. A position equal to the document length
// resolves to the end of the last piece. Returns ok=false for an empty table.
//
// The walk is linear in the piece count; documents large enough to care
// would want a prefix-sum index here instead.
func (t *Table) findPiece(position int) (index, offset int, ok bool) {
	if len(t.pieces) == 0 {
		return 0, 0, false
	}

	cumulative := 0
	for i, p := range t.pieces {
		if position < cumulative+p.Length {
			return i, position - cumulative, true
		}
		cumulative += p.Length
	}

	last := len(t.pieces) - 1
	return last, t.pieces[last].Length, true
}

// slice returns the backing-buffer slice a piece references.
func (t *Table) slice(p Piece) []rune {
	if p.Source == SourceAdd {
		return t.add[p.Offset:p.end()]
	}
	return t.original[p.Offset:p.end()]
}

// insertPieceAt splices a piece into the sequence at index i.
func (t *Table) insertPieceAt(i int, p Piece) {
	t.pieces = append(t.pieces, Piece{})
	copy(t.pieces[i+1:], t.pieces[i:])
	t.pieces[i] = p
}

// mergeAround folds pieces[i] into its neighbors when both reference
// contiguous slices of the add buffer. This bounds piece-count growth under
// sequential typing.
func (t *Table) mergeAround(i int) {
	if !t.mergeAdd {
		return
	}
	if i+1 < len(t.pieces) && canMerge(t.pieces[i], t.pieces[i+1]) {
		t.pieces[i].Length += t.pieces[i+1].Length
		t.pieces = append(t.pieces[:i+1], t.pieces[i+2:]...)
	}
	if i > 0 && canMerge(t.pieces[i-1], t.pieces[i]) {
		t.pieces[i-1].Length += t.pieces[i].Length
		t.pieces = append(t.pieces[:i], t.pieces[i+1:]...)
	}
}

// canMerge reports whether two adjacent pieces reference contiguous slices
// of the add buffer.
func canMerge(left, right Piece) bool {
	return left.Source == SourceAdd && right.Source == SourceAdd && left.end() == right.Offset
}
