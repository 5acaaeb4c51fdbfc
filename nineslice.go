package tui

// NineSlice draws a rectangle from nine cells: four corners, four edges,
// and a fill, indexed row-major. Useful for styled panels where each part
// of the frame carries its own glyph and style.
type NineSlice struct {
	Size  Vec2
	Cells [9]Cell
}

// Slice indices into NineSlice.Cells.
const (
	SliceTopLeft = iota
	SliceTop
	SliceTopRight
	SliceLeft
	SliceCenter
	SliceRight
	SliceBottomLeft
	SliceBottom
	SliceBottomRight
)

// NewNineSlice builds a NineSlice from a border style with the interior
// filled by the given cell.
func NewNineSlice(size Vec2, style BorderStyle, attrs Style, fill Cell) NineSlice {
	chars := style.Chars()
	return NineSlice{
		Size: size,
		Cells: [9]Cell{
			NewCell(chars.TopLeft, attrs),
			NewCell(chars.Top, attrs),
			NewCell(chars.TopRight, attrs),
			NewCell(chars.Left, attrs),
			fill,
			NewCell(chars.Right, attrs),
			NewCell(chars.BottomLeft, attrs),
			NewCell(chars.Bottom, attrs),
			NewCell(chars.BottomRight, attrs),
		},
	}
}

// Render implements Render. Sizes without an interior draw nothing.
func (n NineSlice) Render(loc Vec2, buf *Buffer) Vec2 {
	w, h := n.Size.X, n.Size.Y
	if w < 2 || h < 2 {
		return loc
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			row := 1
			if y == 0 {
				row = 0
			} else if y == h-1 {
				row = 2
			}
			col := 1
			if x == 0 {
				col = 0
			} else if x == w-1 {
				col = 2
			}
			buf.Set(V(loc.X+x, loc.Y+y), n.Cells[row*3+col])
		}
	}

	return V(loc.X+1, loc.Y+1)
}

