package style

import (
	"github.com/Sebkah/99draft-sub000/internal/engine/interval"
	"github.com/Sebkah/99draft-sub000/internal/logging"
)

// BooleanManager tracks an on/off style such as bold or italic. Its runs are
// the ranges where the style is on; the invariant is that stored runs never
// overlap and never touch, so adjacent coverage always collapses into one run.
type BooleanManager struct {
	*Manager[bool]
}

// NewBooleanManager creates a manager for the named on/off style axis.
func NewBooleanManager(name string, opts ...Option[bool]) *BooleanManager {
	return &BooleanManager{Manager: newManager(name, opts...)}
}

// Toggle flips the style over [start, end). The selection is classified
// against the stored runs into exactly one of three cases:
//
//   - nothing stored meets the selection: the selection turns on as a new run
//   - one stored run fully contains the selection: the style turns off there,
//     splitting the run into the surviving left and right remainders
//   - anything else: the style turns on across the union of the selection and
//     every run it meets
//
// Runs that merely touch the selection count as "met": toggling right next to
// an active run extends it rather than leaving two adjacent runs.
func (m *BooleanManager) Toggle(start, end int) {
	if end <= start {
		m.warnDegenerate("toggle", start, end)
		return
	}
	sel := interval.NewRun(start, end, true)
	touching := m.tree.FindTouching(start, end)

	switch {
	case len(touching) == 0:
		m.tree.Insert(sel)

	case len(touching) == 1 && touching[0].ContainsRun(sel):
		r := touching[0]
		m.tree.Delete(r)
		m.tree.Insert(interval.NewRun(r.Start, start, true))
		m.tree.Insert(interval.NewRun(end, r.End, true))

	default:
		merged := sel
		for _, r := range touching {
			m.tree.Delete(r)
			merged = merged.Union(r)
		}
		m.tree.Insert(merged)
	}
}

// Enable turns the style on over [start, end), merging with every run the
// selection meets. Enabling an already-active range is a no-op in effect.
func (m *BooleanManager) Enable(start, end int) {
	if end <= start {
		m.warnDegenerate("enable", start, end)
		return
	}
	merged := interval.NewRun(start, end, true)
	for _, r := range m.tree.FindTouching(start, end) {
		m.tree.Delete(r)
		merged = merged.Union(r)
	}
	m.tree.Insert(merged)
}

// Disable turns the style off over [start, end): every run overlapping the
// selection loses the overlapped portion, keeping any remainder outside it.
// Runs that only touch the selection at a boundary are untouched.
func (m *BooleanManager) Disable(start, end int) {
	if end <= start {
		m.warnDegenerate("disable", start, end)
		return
	}
	for _, r := range m.tree.FindOverlapping(start, end) {
		m.tree.Delete(r)
		m.tree.Insert(interval.NewRun(r.Start, start, true))
		m.tree.Insert(interval.NewRun(end, r.End, true))
	}
}

// Active reports whether the style is on at the position.
func (m *BooleanManager) Active(position int) bool {
	return len(m.tree.FindContaining(position)) > 0
}

// ActiveOverRange reports whether the style is on over all of [start, end),
// with no gap. A degenerate range is trivially covered.
func (m *BooleanManager) ActiveOverRange(start, end int) bool {
	r := interval.NewRun(start, end, true)
	return r.IsCoveredBy(m.tree.FindOverlapping(start, end))
}

func (m *BooleanManager) warnDegenerate(op string, start, end int) {
	m.logger.Warn("degenerate style range ignored",
		logging.FieldAxis, m.name,
		"op", op,
		logging.FieldStart, start,
		logging.FieldEnd, end)
}
