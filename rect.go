package tui

// Rect is a rectangle with position and dimensions, all in cells.
// It is a plain value with no ownership semantics; copy it freely.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a Rect from a position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners creates a Rect spanning topLeft (inclusive) to
// bottomRight (exclusive).
func RectFromCorners(topLeft, bottomRight Vec2) Rect {
	return Rect{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  max(0, bottomRight.X-topLeft.X),
		Height: max(0, bottomRight.Y-topLeft.Y),
	}
}

// RectFromPosSize creates a Rect from a position and a size vector.
func RectFromPosSize(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Position returns the top-left corner.
func (r Rect) Position() Vec2 {
	return V(r.X, r.Y)
}

// Size returns the dimensions as a Vec2.
func (r Rect) Size() Vec2 {
	return V(r.Width, r.Height)
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// BottomRight returns the exclusive bottom-right corner.
func (r Rect) BottomRight() Vec2 {
	return V(r.Right(), r.Bottom())
}

// Center returns the center point (rounded toward the top-left).
func (r Rect) Center() Vec2 {
	return V(r.X+r.Width/2, r.Y+r.Height/2)
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlapping region of two rectangles.
// The result may be empty.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Pad returns a new Rect inset by n on all sides.
func (r Rect) Pad(n int) Rect {
	return r.PadSides(n, n, n, n)
}

// PadSides returns a new Rect inset by the given amounts.
// The order follows CSS convention: top, right, bottom, left.
func (r Rect) PadSides(top, right, bottom, left int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}
