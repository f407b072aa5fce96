package style

import (
	"strings"
	"testing"

	"github.com/Sebkah/99draft-sub000/internal/engine/interval"
)

func TestSetValueOnEmptyRange(t *testing.T) {
	m := NewValueManager[string]("color")

	m.SetValue(2, 6, "red")

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(2, 6, "red"),
	})
}

func TestSetValueSplitsOverlappedRun(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(0, 10, "red")

	m.SetValue(3, 6, "blue")

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(0, 3, "red"),
		interval.NewRun(3, 6, "blue"),
		interval.NewRun(6, 10, "red"),
	})
}

func TestSetValueReplacesSpannedRuns(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(0, 4, "red")
	m.SetValue(6, 10, "green")

	m.SetValue(2, 8, "blue")

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(0, 2, "red"),
		interval.NewRun(2, 8, "blue"),
		interval.NewRun(8, 10, "green"),
	})
}

func TestSetValueMergesEqualNeighbors(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(0, 3, "red")
	m.SetValue(8, 12, "red")

	m.SetValue(3, 8, "red")

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(0, 12, "red"),
	})
}

func TestSetValueDoesNotMergeDistinctNeighbors(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(0, 3, "red")

	m.SetValue(3, 8, "blue")

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(0, 3, "red"),
		interval.NewRun(3, 8, "blue"),
	})
}

func TestSetValueExtendsEqualRun(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(2, 10, "red")

	// Overlapping assignment of the same value widens the run.
	m.SetValue(0, 6, "red")

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(0, 10, "red"),
	})
}

func TestSetValueShortCircuitsUniformRange(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(0, 10, "red")

	m.SetValue(2, 8, "red")

	runsEqual(t, m.Runs(), []interval.Run[string]{
		interval.NewRun(0, 10, "red"),
	})
}

func TestValueAt(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(0, 5, "red")

	if v, ok := m.ValueAt(3); !ok || v != "red" {
		t.Errorf("ValueAt(3) = %q, %v; want red, true", v, ok)
	}
	if v, ok := m.ValueAt(5); ok {
		t.Errorf("ValueAt(5) = %q, %v; half-open end must be unstyled", v, ok)
	}
	if _, ok := m.ValueAt(9); ok {
		t.Error("expected no value past the styled range")
	}
}

func TestValueOverRange(t *testing.T) {
	m := NewValueManager[string]("color")
	m.SetValue(0, 5, "red")
	m.SetValue(5, 10, "blue")

	if v, ok := m.ValueOverRange(1, 4); !ok || v != "red" {
		t.Errorf("expected red over [1,4), got %q, %v", v, ok)
	}
	if _, ok := m.ValueOverRange(3, 8); ok {
		t.Error("range spanning two values must report no consistent value")
	}
	if _, ok := m.ValueOverRange(8, 14); ok {
		t.Error("partially unstyled range must report no consistent value")
	}
}

func TestValueManagerCustomEquality(t *testing.T) {
	eq := func(a, b string) bool { return strings.EqualFold(a, b) }
	m := NewValueManager[string]("color", WithEquals(eq))

	m.SetValue(0, 3, "Red")
	m.SetValue(3, 6, "RED")

	runs := m.Runs()
	if len(runs) != 1 {
		t.Fatalf("expected case-insensitive merge into one run, got %v", runs)
	}
	if runs[0].Start != 0 || runs[0].End != 6 {
		t.Errorf("expected run [0,6), got %v", runs[0])
	}
}
