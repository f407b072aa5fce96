package interval

import (
	"fmt"
	"math"
	"slices"
)

// Sentinel endpoints for open-ended queries.
const (
	// Unbounded means "to the end of the document".
	Unbounded = math.MaxInt

	// NegUnbounded means "from the beginning of the document".
	NegUnbounded = math.MinInt
)

// Run is a half-open interval [Start, End) carrying typed data, such as a
// style flag or a color value. End >= Start always; a run with Start == End
// is degenerate and never persists in a tree.
type Run[T any] struct {
	Start int
	End   int
	Data  T
}

// NewRun creates a run over [start, end).
func NewRun[T any](start, end int, data T) Run[T] {
	return Run[T]{Start: start, End: end, Data: data}
}

// String returns a human-readable representation of the run.
func (r Run[T]) String() string {
	return fmt.Sprintf("[%d,%d)=%v", r.Start, r.End, r.Data)
}

// Len returns the number of characters the run spans.
func (r Run[T]) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the run is degenerate (spans no characters).
func (r Run[T]) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains reports half-open point containment: Start <= p < End.
func (r Run[T]) Contains(p int) bool {
	return r.Start <= p && p < r.End
}

// ContainsRun reports closed containment of another run.
func (r Run[T]) ContainsRun(other Run[T]) bool {
	return r.Start <= other.Start && r.End >= other.End
}

// Overlaps reports whether the two runs share at least one character.
// Runs that only touch at a boundary do not overlap.
func (r Run[T]) Overlaps(other Run[T]) bool {
	return r.Start < other.End && other.Start < r.End
}

// Touches reports whether the two runs share a character or meet exactly at
// a boundary.
func (r Run[T]) Touches(other Run[T]) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// IsCoveredBy reports whether the sorted union of runs spans [Start, End)
// without an internal gap. A degenerate run is trivially covered.
func (r Run[T]) IsCoveredBy(runs []Run[T]) bool {
	if r.IsEmpty() {
		return true
	}

	sorted := slices.Clone(runs)
	slices.SortFunc(sorted, func(a, b Run[T]) int {
		return a.Start - b.Start
	})

	covered := r.Start
	for _, o := range sorted {
		if o.Start > covered {
			break
		}
		if o.End > covered {
			covered = o.End
		}
		if covered >= r.End {
			return true
		}
	}
	return covered >= r.End
}

// Union returns the single bounding run of r and the given runs, carrying
// r's data. The inputs need not overlap.
func (r Run[T]) Union(others ...Run[T]) Run[T] {
	start, end := r.Start, r.End
	for _, o := range others {
		if o.Start < start {
			start = o.Start
		}
		if o.End > end {
			end = o.End
		}
	}
	return Run[T]{Start: start, End: end, Data: r.Data}
}
