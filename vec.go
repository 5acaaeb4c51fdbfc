package tui

// Vec2 is a 2D integer point in cell coordinates (column x, row y).
type Vec2 struct {
	X, Y int
}

// V constructs a Vec2.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other component-wise.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other component-wise.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// In reports whether v lies inside the rectangle spanned by loc and size
// (inclusive of the top-left corner, exclusive of the bottom-right).
func (v Vec2) In(loc, size Vec2) bool {
	return v.X >= loc.X && v.X < loc.X+size.X && v.Y >= loc.Y && v.Y < loc.Y+size.Y
}
