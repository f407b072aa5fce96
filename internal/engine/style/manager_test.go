package style

import (
	"math/rand"
	"testing"

	"github.com/Sebkah/99draft-sub000/internal/engine/interval"
	"github.com/Sebkah/99draft-sub000/internal/event"
)

func runsEqual[T comparable](t *testing.T, got, want []interval.Run[T]) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected runs %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestInsertionGrowsContainingRun(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 5)
	m.Enable(10, 15)

	m.HandleEdit(event.Insertion(3, 2))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 7, true),
		interval.NewRun(12, 17, true),
	})
}

func TestInsertionBeforeRunShiftsIt(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(5, 10)

	m.HandleEdit(event.Insertion(0, 3))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(8, 13, true),
	})
}

func TestInsertionAtRunStartShiftsNotGrows(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(5, 10)

	// Typing at the exact start lands before the styled run.
	m.HandleEdit(event.Insertion(5, 2))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(7, 12, true),
	})
}

func TestInsertionAfterRunLeavesIt(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 5)

	m.HandleEdit(event.Insertion(5, 4))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 5, true),
	})
}

func TestDeletionInsideRunShrinksIt(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 10)

	m.HandleEdit(event.Deletion(3, 4))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 6, true),
	})
}

func TestDeletionRemovesCoveredRun(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(3, 6)

	m.HandleEdit(event.Deletion(2, 6))

	if got := m.Runs(); len(got) != 0 {
		t.Errorf("expected run fully inside deletion to vanish, got %v", got)
	}
}

func TestDeletionTrimsRunEndingInside(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 8)

	m.HandleEdit(event.Deletion(5, 10))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 5, true),
	})
}

func TestDeletionTrimsAndShiftsRunStartingInside(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(5, 12)

	m.HandleEdit(event.Deletion(3, 4))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(3, 8, true),
	})
}

func TestDeletionShiftsTrailingRun(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(10, 15)

	m.HandleEdit(event.Deletion(2, 3))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(7, 12, true),
	})
}

func TestDeletionLeavesTouchingRuns(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 5)

	// Deleting [5,8) only touches the run at its end.
	m.HandleEdit(event.Deletion(5, 3))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 5, true),
	})
}

func TestDeletionStartingAtDeleteEndShiftsLeft(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(8, 12)

	m.HandleEdit(event.Deletion(5, 3))

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(5, 9, true),
	})
}

func TestEditSyncPreservesValues(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(0, 5, "red")
	m.SetValue(5, 10, "blue")

	m.HandleEdit(event.Insertion(2, 3))

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(0, 8, "red"),
		interval.NewRun(8, 13, "blue"),
	})

	m.HandleEdit(event.Deletion(0, 8))

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(0, 5, "blue"),
	})
}

// TestEditSyncTreeIntegrity hammers a manager with random edits and audits
// the tree invariants after each one.
func TestEditSyncTreeIntegrity(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	m := NewBooleanManager("bold")
	docLen := 500

	for i := 0; i < 40; i++ {
		start := rng.Intn(docLen - 1)
		m.Enable(start, start+1+rng.Intn(docLen-start-1))
	}

	for i := 0; i < 500; i++ {
		pos := rng.Intn(docLen)
		if rng.Intn(2) == 0 {
			n := 1 + rng.Intn(10)
			m.HandleEdit(event.Insertion(pos, n))
			docLen += n
		} else {
			n := 1 + rng.Intn(10)
			if pos+n > docLen {
				n = docLen - pos
			}
			if n <= 0 {
				continue
			}
			m.HandleEdit(event.Deletion(pos, n))
			docLen -= n
		}

		if err := m.tree.Validate(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		for _, r := range m.Runs() {
			if r.End > docLen || r.Start < 0 {
				t.Fatalf("step %d: run %v escapes document of length %d", i, r, docLen)
			}
		}
	}
}
