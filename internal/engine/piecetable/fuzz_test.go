package piecetable

import (
	"testing"
	"unicode/utf8"
)

// FuzzInsert tests insert against the plain-string equivalent.
func FuzzInsert(f *testing.F) {
	f.Add("hello", 0, "x")
	f.Add("hello", 5, "x")
	f.Add("hello", 3, "world")
	f.Add("", 0, "test")
	f.Add("日本語", 2, "x")

	f.Fuzz(func(t *testing.T, initial string, position int, insert string) {
		if !utf8.ValidString(initial) || !utf8.ValidString(insert) {
			return
		}

		runes := []rune(initial)

		// Clamp position to the valid range
		if position < 0 {
			position = 0
		}
		if position > len(runes) {
			position = len(runes)
		}

		pt := New(initial)
		if err := pt.Insert(position, insert); err != nil {
			t.Fatalf("insert(%d, %q) failed: %v", position, insert, err)
		}

		expected := string(runes[:position]) + insert + string(runes[position:])
		if pt.Text() != expected {
			t.Errorf("insert mismatch at position %d: got %q, want %q", position, pt.Text(), expected)
		}
	})
}

// FuzzDelete tests delete against the plain-string equivalent.
func FuzzDelete(f *testing.F) {
	f.Add("hello world", 0, 5)
	f.Add("hello world", 6, 5)
	f.Add("hello world", 5, 1)
	f.Add("日本語", 0, 2)

	f.Fuzz(func(t *testing.T, initial string, start, count int) {
		if !utf8.ValidString(initial) {
			return
		}

		runes := []rune(initial)
		if len(runes) == 0 {
			return
		}

		// Clamp to the valid range
		if start < 0 {
			start = 0
		}
		if start >= len(runes) {
			start = len(runes) - 1
		}
		if count < 1 {
			count = 1
		}

		pt := New(initial)
		if err := pt.Delete(start, count); err != nil {
			t.Fatalf("delete(%d, %d) failed: %v", start, count, err)
		}

		end := start + count
		if end > len(runes) {
			end = len(runes)
		}
		expected := string(runes[:start]) + string(runes[end:])
		if pt.Text() != expected {
			t.Errorf("delete mismatch: got %q, want %q", pt.Text(), expected)
		}
	})
}
