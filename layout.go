package tui

import (
	stderrors "errors"
	"math"

	"github.com/pkg/errors"
)

// Layout resolution errors. Callers match these with errors.Is; the
// wrapped form carries row context.
var (
	// ErrInsufficientSpace means the minimum demands of the constraints
	// exceed the available space.
	ErrInsufficientSpace = stderrors.New("insufficient space for constraints")
	// ErrInvalidPercentages means a percentage is outside [0, 100] or the
	// percentages sum past 100.
	ErrInvalidPercentages = stderrors.New("invalid percentage constraints")
	// ErrConstraintConflict means a constraint is self-contradictory, such
	// as a range whose minimum exceeds its maximum.
	ErrConstraintConflict = stderrors.New("conflicting constraint bounds")
)

type constraintKind int

const (
	constraintFixed constraintKind = iota
	constraintPercentage
	constraintRange
	constraintMin
	constraintMax
	constraintFlexible
)

// Constraint describes how one slot of a layout axis claims space.
// Construct values with Fixed, Percentage, Range, Min, Max, or Flexible.
type Constraint struct {
	kind constraintKind
	// value holds the size for Fixed, the percentage for Percentage.
	value float64
	lo    int
	hi    int
}

// Fixed claims exactly n cells. Resolution fails if the fixed claims alone
// exceed the available space.
func Fixed(n int) Constraint {
	return Constraint{kind: constraintFixed, value: float64(n)}
}

// Percentage claims pct percent of the available space, rounded. When the
// combined claims overflow, percentage slots shrink proportionally.
func Percentage(pct float64) Constraint {
	return Constraint{kind: constraintPercentage, value: pct}
}

// Range claims at least lo cells and grows up to hi as slack allows.
func Range(lo, hi int) Constraint {
	return Constraint{kind: constraintRange, lo: lo, hi: hi}
}

// Min claims at least n cells and grows without bound as slack allows.
func Min(n int) Constraint {
	return Constraint{kind: constraintMin, lo: n}
}

// Max claims nothing but grows up to n as slack allows.
func Max(n int) Constraint {
	return Constraint{kind: constraintMax, hi: n}
}

// Flexible claims nothing and grows without bound as slack allows.
func Flexible() Constraint {
	return Constraint{kind: constraintFlexible}
}

// ResolveConstraints splits available cells across the constraints,
// returning one size per constraint in declaration order. The sizes never
// sum past available.
//
// Resolution order: fixed claims first, then rounded percentage claims
// (shrunk proportionally if they overflow what the fixed claims left),
// then range/min floors. Remaining slack is handed out one cell at a time,
// round robin in declaration order, to the constraints that can still
// grow.
func ResolveConstraints(constraints []Constraint, available int) ([]int, error) {
	if available < 0 {
		available = 0
	}

	pctTotal := 0.0
	for _, c := range constraints {
		switch c.kind {
		case constraintPercentage:
			if c.value < 0 || c.value > 100 {
				return nil, errors.Wrapf(ErrInvalidPercentages, "percentage %v out of range", c.value)
			}
			pctTotal += c.value
		case constraintRange:
			if c.lo > c.hi {
				return nil, errors.Wrapf(ErrConstraintConflict, "range [%d, %d]", c.lo, c.hi)
			}
		case constraintFixed:
			if c.value < 0 {
				return nil, errors.Wrapf(ErrConstraintConflict, "fixed size %v negative", c.value)
			}
		}
	}
	if pctTotal > 100 {
		return nil, errors.Wrapf(ErrInvalidPercentages, "percentages sum to %v", pctTotal)
	}

	sizes := make([]int, len(constraints))

	// Fixed claims come off the top.
	total := 0
	for i, c := range constraints {
		if c.kind == constraintFixed {
			sizes[i] = int(c.value)
			total += sizes[i]
		}
	}
	if total > available {
		return nil, errors.Wrapf(ErrInsufficientSpace, "fixed claims %d exceed %d", total, available)
	}

	// Percentage claims are computed against the full space, then shrunk
	// proportionally if they no longer fit next to the fixed claims. The
	// shrink floors so the total can never creep past available.
	pctClaimed := 0
	for i, c := range constraints {
		if c.kind == constraintPercentage {
			sizes[i] = int(math.Round(float64(available) * c.value / 100))
			pctClaimed += sizes[i]
		}
	}
	if remaining := available - total; pctClaimed > remaining && pctClaimed > 0 {
		for i, c := range constraints {
			if c.kind == constraintPercentage {
				sizes[i] = int(math.Floor(float64(sizes[i]) * float64(remaining) / float64(pctClaimed)))
			}
		}
	}
	for i, c := range constraints {
		if c.kind == constraintPercentage {
			total += sizes[i]
		}
	}

	// Range and min floors.
	for i, c := range constraints {
		if c.kind == constraintRange || c.kind == constraintMin {
			sizes[i] = c.lo
			total += c.lo
		}
	}
	if total > available {
		return nil, errors.Wrapf(ErrInsufficientSpace, "minimum claims %d exceed %d", total, available)
	}

	// Hand slack out one cell per turn so co-equal growers split it evenly
	// with any remainder landing on the earliest declared.
	slack := available - total
	for slack > 0 {
		grew := false
		for i, c := range constraints {
			if slack == 0 {
				break
			}
			switch c.kind {
			case constraintMin, constraintFlexible:
				sizes[i]++
				slack--
				grew = true
			case constraintRange, constraintMax:
				if sizes[i] < c.hi {
					sizes[i]++
					slack--
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	return sizes, nil
}

// Layout is a builder for a grid of rows, each row carrying a height
// constraint and a set of column constraints.
type Layout struct {
	rows []layoutRow
}

type layoutRow struct {
	height Constraint
	cols   []Constraint
}

// NewLayout returns an empty layout builder.
func NewLayout() *Layout {
	return &Layout{}
}

// Row appends a row with the given height and column constraints.
func (l *Layout) Row(height Constraint, cols ...Constraint) *Layout {
	l.rows = append(l.rows, layoutRow{height: height, cols: cols})
	return l
}

// EmptyRow appends a spacer row with no columns.
func (l *Layout) EmptyRow(height Constraint) *Layout {
	l.rows = append(l.rows, layoutRow{height: height})
	return l
}

// Calculate resolves the layout against the given space and returns one
// rectangle per column, grouped by row. Spacer rows contribute an empty
// slice.
func (l *Layout) Calculate(space Vec2) ([][]Rect, error) {
	heightCons := make([]Constraint, len(l.rows))
	for i, row := range l.rows {
		heightCons[i] = row.height
	}

	heights, err := ResolveConstraints(heightCons, space.Y)
	if err != nil {
		return nil, errors.Wrap(err, "resolving row heights")
	}

	rects := make([][]Rect, len(l.rows))
	y := 0
	for i, row := range l.rows {
		widths, err := ResolveConstraints(row.cols, space.X)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving columns of row %d", i)
		}

		rowRects := make([]Rect, len(row.cols))
		x := 0
		for j, w := range widths {
			rowRects[j] = NewRect(x, y, w, heights[i])
			x += w
		}
		rects[i] = rowRects
		y += heights[i]
	}
	return rects, nil
}
