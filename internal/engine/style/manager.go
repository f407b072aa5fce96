package style

import (
	"github.com/charmbracelet/log"

	"github.com/Sebkah/99draft-sub000/internal/engine/interval"
	"github.com/Sebkah/99draft-sub000/internal/event"
	"github.com/Sebkah/99draft-sub000/internal/logging"
)

// Manager tracks the ranges of one style axis in an interval tree and keeps
// them consistent with buffer edits. It implements event.Listener: register
// it with the buffer's notifier and every insertion and deletion rewrites the
// tracked runs through a two-phase protocol (see HandleEdit).
//
// Manager is the shared base; use BooleanManager for on/off styles and
// ValueManager for styles carrying a value. A Manager is not safe for
// concurrent use; the owning document serializes access.
type Manager[T any] struct {
	name   string
	tree   *interval.Tree[T]
	equals func(a, b T) bool
	logger *log.Logger
}

// Option configures a Manager during creation.
type Option[T any] func(*Manager[T])

// WithLogger sets the logger used for diagnostics.
func WithLogger[T any](logger *log.Logger) Option[T] {
	return func(m *Manager[T]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithEquals sets the data-equality function used when matching and merging
// runs. The default compares with ==, which requires a comparable data type.
func WithEquals[T any](eq func(a, b T) bool) Option[T] {
	return func(m *Manager[T]) {
		if eq != nil {
			m.equals = eq
		}
	}
}

func newManager[T any](name string, opts ...Option[T]) *Manager[T] {
	m := &Manager[T]{
		name:   name,
		equals: func(a, b T) bool { return any(a) == any(b) },
		logger: logging.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.tree = interval.NewTree[T](interval.WithEquals(m.equals))
	return m
}

// Name returns the style axis name.
func (m *Manager[T]) Name() string {
	return m.name
}

// Len returns the number of tracked runs.
func (m *Manager[T]) Len() int {
	return m.tree.Len()
}

// Runs returns every tracked run in ascending order.
func (m *Manager[T]) Runs() []interval.Run[T] {
	return m.tree.All()
}

// RunsOverlapping returns the runs sharing at least one character with
// [start, end), in ascending order.
func (m *Manager[T]) RunsOverlapping(start, end int) []interval.Run[T] {
	if end <= start {
		m.logger.Warn("degenerate range query",
			logging.FieldAxis, m.name,
			logging.FieldStart, start,
			logging.FieldEnd, end)
		return nil
	}
	return m.tree.FindOverlapping(start, end)
}

// HandleEdit rewrites the tracked runs for one buffer edit. Delivery is
// synchronous: the rewrite completes before the buffer accepts another
// mutation, so runs and text never disagree between edits.
func (m *Manager[T]) HandleEdit(e event.Edit) {
	switch e.Kind {
	case event.KindInsertion:
		m.applyInsertion(e.Position, e.Length)
	case event.KindDeletion:
		m.applyDeletion(e.Position, e.Length)
	}
}

// applyInsertion adjusts runs for length characters inserted at position:
//
//  1. Runs with the position strictly inside them grow, so text typed inside
//     a styled run inherits its style.
//  2. Runs starting at or after the position shift right, unchanged in
//     length. Text typed exactly at a run's start lands before it.
//
// The two sets are disjoint: a grown run starts before the position, a
// shifted one at or after it. Both sets are collected before the tree is
// touched, then rewritten by delete and reinsert.
func (m *Manager[T]) applyInsertion(position, length int) {
	if length <= 0 {
		return
	}

	var grown []interval.Run[T]
	for _, r := range m.tree.FindContaining(position) {
		if r.Start < position {
			grown = append(grown, r)
		}
	}
	shifted := m.tree.FindInRange(position, interval.Unbounded)

	for _, r := range grown {
		m.tree.Delete(r)
		m.tree.Insert(interval.NewRun(r.Start, r.End+length, r.Data))
	}
	for _, r := range shifted {
		m.tree.Delete(r)
		m.tree.Insert(interval.NewRun(r.Start+length, r.End+length, r.Data))
	}

	m.logger.Debug("runs adjusted for insertion",
		logging.FieldAxis, m.name,
		logging.FieldPosition, position,
		logging.FieldLength, length,
		logging.FieldRuns, m.tree.Len())
}

// applyDeletion adjusts runs for length characters removed at position:
//
//  1. Runs overlapping the deleted range are reshaped: dropped when fully
//     inside it, shrunk when they straddle both edges, trimmed to the
//     position when they end inside it, trimmed and shifted when they start
//     inside it. Runs that only touch the range at a boundary are left alone.
//  2. Runs starting at or after the end of the deleted range shift left.
//
// Overlap here is strict, so the reshaped set has every start before the
// range end and never intersects the shifted set.
func (m *Manager[T]) applyDeletion(position, length int) {
	if length <= 0 {
		return
	}
	deleteEnd := position + length

	reshaped := m.tree.FindOverlapping(position, deleteEnd)
	shifted := m.tree.FindInRange(deleteEnd, interval.Unbounded)

	for _, r := range reshaped {
		m.tree.Delete(r)

		newStart := r.Start
		if newStart > position {
			newStart = position
		}
		newEnd := position
		if r.End > deleteEnd {
			newEnd = r.End - length
		}
		m.tree.Insert(interval.NewRun(newStart, newEnd, r.Data))
	}
	for _, r := range shifted {
		m.tree.Delete(r)
		m.tree.Insert(interval.NewRun(r.Start-length, r.End-length, r.Data))
	}

	m.logger.Debug("runs adjusted for deletion",
		logging.FieldAxis, m.name,
		logging.FieldPosition, position,
		logging.FieldLength, length,
		logging.FieldRuns, m.tree.Len())
}
