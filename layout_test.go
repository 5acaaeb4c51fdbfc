package tui

import (
	"testing"

	"github.com/pkg/errors"
)

func TestResolveConstraints_FixedAndFlexible(t *testing.T) {
	sizes, err := ResolveConstraints([]Constraint{Fixed(5), Flexible()}, 20)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	if sizes[0] != 5 || sizes[1] != 15 {
		t.Errorf("sizes = %v, want [5 15]", sizes)
	}
}

func TestResolveConstraints_Percentages(t *testing.T) {
	sizes, err := ResolveConstraints([]Constraint{Percentage(25), Percentage(75)}, 100)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	if sizes[0] != 25 || sizes[1] != 75 {
		t.Errorf("sizes = %v, want [25 75]", sizes)
	}
}

func TestResolveConstraints_PercentageRoundingNeverOverflows(t *testing.T) {
	// Both halves of 101 round up to 51; the shrink must floor so the
	// total stays within the available space.
	sizes, err := ResolveConstraints([]Constraint{Percentage(50), Percentage(50)}, 101)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	if total := sizes[0] + sizes[1]; total > 101 {
		t.Errorf("total = %d, exceeds available 101", total)
	}
}

func TestResolveConstraints_InvalidPercentages(t *testing.T) {
	tests := []struct {
		name string
		cons []Constraint
	}{
		{"negative", []Constraint{Percentage(-10)}},
		{"over hundred", []Constraint{Percentage(150)}},
		{"sum over hundred", []Constraint{Percentage(60), Percentage(60)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveConstraints(tt.cons, 100)
			if !errors.Is(err, ErrInvalidPercentages) {
				t.Errorf("error = %v, want ErrInvalidPercentages", err)
			}
		})
	}
}

func TestResolveConstraints_InsufficientSpace(t *testing.T) {
	tests := []struct {
		name string
		cons []Constraint
		n    int
	}{
		{"fixed overflow", []Constraint{Fixed(60), Fixed(60)}, 100},
		{"min overflow", []Constraint{Min(60), Min(60)}, 100},
		{"range floors overflow", []Constraint{Range(70, 90), Range(40, 50)}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveConstraints(tt.cons, tt.n)
			if !errors.Is(err, ErrInsufficientSpace) {
				t.Errorf("error = %v, want ErrInsufficientSpace", err)
			}
		})
	}
}

func TestResolveConstraints_MaxCapped(t *testing.T) {
	sizes, err := ResolveConstraints([]Constraint{Max(30), Flexible()}, 100)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	if sizes[0] != 30 || sizes[1] != 70 {
		t.Errorf("sizes = %v, want [30 70]", sizes)
	}
}

func TestResolveConstraints_MinsSplitSlackEvenly(t *testing.T) {
	sizes, err := ResolveConstraints([]Constraint{Min(30), Min(20)}, 100)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	// 50 cells of slack, one per turn: 25 each on top of the floors.
	if sizes[0] != 55 || sizes[1] != 45 {
		t.Errorf("sizes = %v, want [55 45]", sizes)
	}
}

func TestResolveConstraints_RangeStopsAtMax(t *testing.T) {
	sizes, err := ResolveConstraints([]Constraint{Range(5, 10), Flexible()}, 50)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	if sizes[0] != 10 || sizes[1] != 40 {
		t.Errorf("sizes = %v, want [10 40]", sizes)
	}
}

func TestResolveConstraints_RemainderToEarliest(t *testing.T) {
	sizes, err := ResolveConstraints([]Constraint{Flexible(), Flexible(), Flexible()}, 10)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	if sizes[0] != 4 || sizes[1] != 3 || sizes[2] != 3 {
		t.Errorf("sizes = %v, want [4 3 3]", sizes)
	}
}

func TestResolveConstraints_ConflictingRange(t *testing.T) {
	_, err := ResolveConstraints([]Constraint{Range(10, 5)}, 100)
	if !errors.Is(err, ErrConstraintConflict) {
		t.Errorf("error = %v, want ErrConstraintConflict", err)
	}
}

func TestResolveConstraints_NoGrowersLeavesSlack(t *testing.T) {
	sizes, err := ResolveConstraints([]Constraint{Fixed(5), Percentage(10)}, 50)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	if sizes[0] != 5 || sizes[1] != 5 {
		t.Errorf("sizes = %v, want [5 5]", sizes)
	}
}

func TestResolveConstraints_Idempotent(t *testing.T) {
	cons := []Constraint{Fixed(4), Percentage(30), Min(10), Flexible()}

	first, err := ResolveConstraints(cons, 80)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	second, err := ResolveConstraints(cons, 80)
	if err != nil {
		t.Fatalf("ResolveConstraints() error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("resolution not deterministic: %v vs %v", first, second)
		}
	}
}

func TestLayout_Calculate(t *testing.T) {
	rects, err := NewLayout().
		Row(Fixed(2), Percentage(50), Percentage(50)).
		Row(Flexible(), Fixed(10), Flexible()).
		Calculate(V(40, 12))
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if len(rects) != 2 {
		t.Fatalf("got %d rows, want 2", len(rects))
	}

	if rects[0][0] != NewRect(0, 0, 20, 2) {
		t.Errorf("row 0 col 0 = %+v", rects[0][0])
	}
	if rects[0][1] != NewRect(20, 0, 20, 2) {
		t.Errorf("row 0 col 1 = %+v", rects[0][1])
	}
	if rects[1][0] != NewRect(0, 2, 10, 10) {
		t.Errorf("row 1 col 0 = %+v", rects[1][0])
	}
	if rects[1][1] != NewRect(10, 2, 30, 10) {
		t.Errorf("row 1 col 1 = %+v", rects[1][1])
	}
}

func TestLayout_EmptyRowSpacer(t *testing.T) {
	rects, err := NewLayout().
		Row(Fixed(1), Flexible()).
		EmptyRow(Fixed(2)).
		Row(Flexible(), Flexible()).
		Calculate(V(10, 10))
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if len(rects[1]) != 0 {
		t.Errorf("spacer row has %d rects, want 0", len(rects[1]))
	}
	if rects[2][0].Y != 3 {
		t.Errorf("row after spacer starts at y=%d, want 3", rects[2][0].Y)
	}
}

func TestLayout_Calculate_RowError(t *testing.T) {
	_, err := NewLayout().
		Row(Flexible(), Fixed(100)).
		Calculate(V(40, 10))
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Errorf("error = %v, want ErrInsufficientSpace", err)
	}
}
