package style

import (
	"math/rand"
	"testing"

	"github.com/Sebkah/99draft-sub000/internal/engine/interval"
)

func TestToggleOnEmptyRange(t *testing.T) {
	m := NewBooleanManager("bold")

	m.Toggle(3, 8)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(3, 8, true),
	})
	if !m.ActiveOverRange(3, 8) {
		t.Error("expected toggled range to be active")
	}
}

func TestToggleInsideRunSplitsIt(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Toggle(0, 10)

	m.Toggle(3, 6)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 3, true),
		interval.NewRun(6, 10, true),
	})
	if m.Active(4) {
		t.Error("expected hole at position 4")
	}
}

func TestToggleExactRunTurnsItOff(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Toggle(2, 7)

	m.Toggle(2, 7)

	if got := m.Runs(); len(got) != 0 {
		t.Errorf("expected empty manager after double toggle, got %v", got)
	}
}

func TestToggleAtRunEdgeLeavesOneFragment(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Toggle(0, 10)

	m.Toggle(0, 4)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(4, 10, true),
	})
}

func TestTogglePartialOverlapMerges(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Toggle(0, 5)

	m.Toggle(3, 9)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 9, true),
	})
}

func TestToggleBridgesRuns(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Toggle(0, 4)
	m.Toggle(8, 12)

	m.Toggle(3, 9)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 12, true),
	})
}

func TestToggleAdjacentRunMerges(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Toggle(0, 5)

	m.Toggle(5, 9)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 9, true),
	})
}

func TestEnableIsIdempotent(t *testing.T) {
	m := NewBooleanManager("bold")

	m.Enable(2, 8)
	m.Enable(2, 8)
	m.Enable(4, 6)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(2, 8, true),
	})
}

func TestDisablePartialRange(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 10)

	m.Disable(3, 6)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 3, true),
		interval.NewRun(6, 10, true),
	})
}

func TestDisableAcrossRuns(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 5)
	m.Enable(8, 14)

	m.Disable(3, 10)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 3, true),
		interval.NewRun(10, 14, true),
	})
}

func TestDisableUnstyledRangeIsNoOp(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 3)

	// Only touches the run at its boundary.
	m.Disable(3, 8)

	runsEqual(t, m.Runs(), []interval.Run[bool]{
		interval.NewRun(0, 3, true),
	})
}

func TestActiveOverRangeRequiresFullCoverage(t *testing.T) {
	m := NewBooleanManager("bold")
	m.Enable(0, 5)

	if !m.ActiveOverRange(0, 5) {
		t.Error("expected full range to be active")
	}
	if !m.ActiveOverRange(1, 4) {
		t.Error("expected sub-range to be active")
	}
	if m.ActiveOverRange(2, 8) {
		t.Error("partially covered range must not report active")
	}
	if m.ActiveOverRange(6, 9) {
		t.Error("uncovered range must not report active")
	}
}

func TestDegenerateRangesIgnored(t *testing.T) {
	m := NewBooleanManager("bold")

	m.Toggle(5, 5)
	m.Enable(7, 3)
	m.Disable(4, 4)

	if got := m.Runs(); len(got) != 0 {
		t.Errorf("expected degenerate ranges to be ignored, got %v", got)
	}
	if got := m.RunsOverlapping(5, 5); got != nil {
		t.Errorf("expected nil for degenerate query, got %v", got)
	}
}

// TestCoverageInvariantUnderChurn checks that no two stored runs overlap or
// touch after arbitrary toggle/enable/disable sequences.
func TestCoverageInvariantUnderChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	m := NewBooleanManager("bold")

	for i := 0; i < 1500; i++ {
		start := rng.Intn(200)
		end := start + 1 + rng.Intn(40)
		switch rng.Intn(3) {
		case 0:
			m.Toggle(start, end)
		case 1:
			m.Enable(start, end)
		case 2:
			m.Disable(start, end)
		}

		runs := m.Runs()
		for j := 1; j < len(runs); j++ {
			if runs[j-1].Touches(runs[j]) {
				t.Fatalf("step %d: runs %v and %v overlap or touch", i, runs[j-1], runs[j])
			}
		}
		if err := m.tree.Validate(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}
