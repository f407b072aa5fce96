package style

import (
	"github.com/Sebkah/99draft-sub000/internal/engine/interval"
	"github.com/Sebkah/99draft-sub000/internal/logging"
)

// ValueManager tracks a style carrying a value per range, such as a color or
// a font size. Its runs partition the styled ranges by value: runs never
// overlap, equal-valued runs that become adjacent are merged, and runs with
// distinct values are never merged.
//
// Values are compared with == unless WithEquals supplies a custom equality.
type ValueManager[T any] struct {
	*Manager[T]
}

// NewValueManager creates a manager for the named valued style axis.
func NewValueManager[T any](name string, opts ...Option[T]) *ValueManager[T] {
	return &ValueManager[T]{Manager: newManager(name, opts...)}
}

// SetValue assigns value to [start, end). Overlapped portions of existing
// runs are replaced; their portions outside the range survive as fragments.
// If an equal-valued run ends exactly at start or begins exactly at end, the
// new run absorbs it, keeping the partition free of adjacent equal values.
func (m *ValueManager[T]) SetValue(start, end int, value T) {
	if end <= start {
		m.logger.Warn("degenerate style range ignored",
			logging.FieldAxis, m.name,
			"op", "set",
			logging.FieldStart, start,
			logging.FieldEnd, end)
		return
	}

	// Already uniformly this value across the whole range.
	if current, ok := m.ValueOverRange(start, end); ok && m.equals(current, value) {
		return
	}

	for _, r := range m.tree.FindOverlapping(start, end) {
		m.tree.Delete(r)
		m.tree.Insert(interval.NewRun(r.Start, start, r.Data))
		m.tree.Insert(interval.NewRun(end, r.End, r.Data))
	}

	merged := interval.NewRun(start, end, value)
	for _, r := range m.tree.FindTouching(start, end) {
		if !r.Overlaps(merged) && m.equals(r.Data, value) {
			m.tree.Delete(r)
			merged = merged.Union(r)
		}
	}
	m.tree.Insert(merged)
}

// ValueAt returns the value at the position, or false if the position is
// unstyled.
func (m *ValueManager[T]) ValueAt(position int) (T, bool) {
	runs := m.tree.FindContaining(position)
	if len(runs) == 0 {
		var zero T
		return zero, false
	}
	return runs[0].Data, true
}

// ValueOverRange returns the single value covering all of [start, end), or
// false when the range is partly unstyled or spans more than one value.
func (m *ValueManager[T]) ValueOverRange(start, end int) (T, bool) {
	var zero T

	runs := m.tree.FindOverlapping(start, end)
	if len(runs) == 0 {
		return zero, false
	}

	value := runs[0].Data
	for _, r := range runs[1:] {
		if !m.equals(r.Data, value) {
			return zero, false
		}
	}

	if !interval.NewRun(start, end, value).IsCoveredBy(runs) {
		return zero, false
	}
	return value, true
}
