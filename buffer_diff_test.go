package tui

import (
	"testing"
)

func TestBuffer_Diff_NoChanges(t *testing.T) {
	prev := NewBuffer(5, 3)
	next := NewBuffer(5, 3)

	if changes := prev.Diff(next); len(changes) != 0 {
		t.Errorf("Diff() returned %d changes, want 0", len(changes))
	}
}

func TestBuffer_Diff_SingleChange(t *testing.T) {
	prev := NewBuffer(5, 3)
	next := NewBuffer(5, 3)
	next.SetRune(V(2, 1), 'A', NewStyle())

	changes := prev.Diff(next)
	if len(changes) != 1 {
		t.Fatalf("Diff() returned %d changes, want 1", len(changes))
	}
	if changes[0].Loc != V(2, 1) {
		t.Errorf("change at %v, want %v", changes[0].Loc, V(2, 1))
	}
	if changes[0].Cell.Text != "A" {
		t.Errorf("change cell = %q, want %q", changes[0].Cell.Text, "A")
	}
}

func TestBuffer_Diff_RowMajorOrder(t *testing.T) {
	prev := NewBuffer(3, 3)
	next := NewBuffer(3, 3)

	// Written out of order, reported in row-major order.
	next.SetRune(V(2, 2), 'I', NewStyle())
	next.SetRune(V(0, 0), 'A', NewStyle())
	next.SetRune(V(1, 1), 'E', NewStyle())

	changes := prev.Diff(next)
	if len(changes) != 3 {
		t.Fatalf("Diff() returned %d changes, want 3", len(changes))
	}

	want := []Vec2{V(0, 0), V(1, 1), V(2, 2)}
	for i, loc := range want {
		if changes[i].Loc != loc {
			t.Errorf("change %d at %v, want %v", i, changes[i].Loc, loc)
		}
	}
}

func TestBuffer_Diff_StyleOnlyChange(t *testing.T) {
	prev := NewBuffer(3, 1)
	next := NewBuffer(3, 1)
	prev.SetRune(V(1, 0), 'A', NewStyle())
	next.SetRune(V(1, 0), 'A', NewStyle().Bold())

	changes := prev.Diff(next)
	if len(changes) != 1 {
		t.Fatalf("Diff() returned %d changes, want 1", len(changes))
	}
	if !changes[0].Cell.Style.HasAttr(AttrBold) {
		t.Error("change lost the style difference")
	}
}

func TestBuffer_Diff_SkipsWideContinuation(t *testing.T) {
	prev := NewBuffer(5, 1)
	next := NewBuffer(5, 1)
	next.Set(V(1, 0), NewCell('世', NewStyle()))

	changes := prev.Diff(next)
	if len(changes) != 1 {
		t.Fatalf("Diff() returned %d changes, want 1", len(changes))
	}
	if changes[0].Loc != V(1, 0) {
		t.Errorf("change at %v, want %v", changes[0].Loc, V(1, 0))
	}
	if changes[0].Cell.Width != 2 {
		t.Errorf("change width = %d, want 2", changes[0].Cell.Width)
	}
}

func TestBuffer_Diff_CellAfterWideGlyph(t *testing.T) {
	prev := NewBuffer(5, 1)
	next := NewBuffer(5, 1)
	next.Set(V(0, 0), NewCell('世', NewStyle()))
	next.SetRune(V(2, 0), 'x', NewStyle())

	changes := prev.Diff(next)
	if len(changes) != 2 {
		t.Fatalf("Diff() returned %d changes, want 2", len(changes))
	}
	if changes[1].Loc != V(2, 0) {
		t.Errorf("second change at %v, want %v", changes[1].Loc, V(2, 0))
	}
}

func TestBuffer_Diff_SizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Diff of unequal sizes did not panic")
		}
	}()

	NewBuffer(5, 3).Diff(NewBuffer(4, 3))
}

func TestBuffer_Diff_AppliedToPrevIsIdentity(t *testing.T) {
	prev := NewBuffer(6, 3)
	prev.SetString(V(0, 0), "hello", NewStyle())

	next := NewBuffer(6, 3)
	next.SetString(V(1, 1), "wor世d", NewStyle().Bold())

	for _, ch := range prev.Diff(next) {
		prev.Set(ch.Loc, ch.Cell)
	}

	if leftover := prev.Diff(next); len(leftover) != 0 {
		t.Errorf("after applying changes, %d cells still differ", len(leftover))
	}
}
