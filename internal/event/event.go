package event

import "fmt"

// Kind categorizes a buffer edit.
type Kind uint8

const (
	// KindInsertion means text was inserted into the buffer.
	KindInsertion Kind = iota

	// KindDeletion means text was removed from the buffer.
	KindDeletion
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInsertion:
		return "insertion"
	case KindDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Edit describes a completed buffer mutation. It is published by the piece
// table after the mutation succeeded, so listeners always observe a buffer
// that already reflects the edit.
type Edit struct {
	// Kind is the type of edit.
	Kind Kind

	// Position is the character offset where the edit took place.
	Position int

	// Length is the number of characters inserted or removed.
	Length int

	// Document is the ID of the document that was edited.
	Document string

	// Version is the buffer version after the edit.
	Version uint64
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("%s(%d, %d) v%d", e.Kind, e.Position, e.Length, e.Version)
}

// Insertion creates an insertion edit.
func Insertion(position, length int) Edit {
	return Edit{Kind: KindInsertion, Position: position, Length: length}
}

// Deletion creates a deletion edit.
func Deletion(position, length int) Edit {
	return Edit{Kind: KindDeletion, Position: position, Length: length}
}

// Listener receives edit notifications.
type Listener interface {
	HandleEdit(Edit)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Edit)

// HandleEdit calls the function.
func (f ListenerFunc) HandleEdit(e Edit) {
	f(e)
}
