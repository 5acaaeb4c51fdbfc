package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Buffer is a 2D grid of cells representing one frame. Cells are stored
// row-major; index = y*width + x. Out-of-bounds coordinates are rejected,
// never clamped, so layout bugs fail loudly instead of painting the wrong
// cell.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// CellChange is one differing slot reported by Diff: the location and the
// new cell to draw there.
type CellChange struct {
	Loc  Vec2
	Cell Cell
}

// NewBuffer creates a buffer of the given dimensions filled with blank
// cells. Negative dimensions are treated as zero.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	blank := EmptyCell()
	for i := range cells {
		cells[i] = blank
	}

	return &Buffer{width: width, height: height, cells: cells}
}

// NewBufferFilled creates a buffer with every slot set to the given cell.
func NewBufferFilled(width, height int, c Cell) *Buffer {
	b := NewBuffer(width, height)
	b.Fill(c)
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Vec2 {
	return V(b.width, b.height)
}

// Rect returns the buffer bounds as a Rect at the origin.
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts a location to a flat index, or -1 if out of bounds.
func (b *Buffer) idx(loc Vec2) int {
	if loc.X < 0 || loc.X >= b.width || loc.Y < 0 || loc.Y >= b.height {
		return -1
	}
	return loc.Y*b.width + loc.X
}

// Get returns the cell at loc, or (zero, false) if loc is out of bounds.
func (b *Buffer) Get(loc Vec2) (Cell, bool) {
	i := b.idx(loc)
	if i < 0 {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Set replaces the cell at loc. If the new cell is two columns wide, the
// following column is forced to a continuation placeholder so the grid
// never holds a dangling half-glyph. Any wide glyph the write would
// partially overlap is cleared to blanks first. Reports whether the write
// landed in bounds.
func (b *Buffer) Set(loc Vec2, c Cell) bool {
	i := b.idx(loc)
	if i < 0 {
		return false
	}

	current := b.cells[i]

	// Overwriting the tail of a wide glyph orphans its head.
	if current.IsContinuation() {
		b.clearWideAt(loc)
	}
	// Overwriting the head of a wide glyph orphans its tail.
	if current.Width == 2 {
		b.setRaw(V(loc.X+1, loc.Y), EmptyCell())
	}

	if c.Width == 2 {
		// A wide cell in the last column cannot fit; degrade to a styled
		// blank rather than leaving half a glyph.
		if loc.X+1 >= b.width {
			blank := EmptyCell()
			blank.Style = c.Style
			b.cells[i] = blank
			return true
		}
		// The second column may itself overlap another wide glyph.
		next := b.cells[i+1]
		if next.Width == 2 || next.IsContinuation() {
			b.clearWideAt(V(loc.X+1, loc.Y))
		}
	}

	b.cells[i] = c
	if c.Width == 2 {
		b.cells[i+1] = ContinuationCell(c.Style)
	}
	return true
}

// setRaw writes a single slot without wide-cell bookkeeping.
func (b *Buffer) setRaw(loc Vec2, c Cell) {
	if i := b.idx(loc); i >= 0 {
		b.cells[i] = c
	}
}

// clearWideAt blanks the wide glyph occupying loc, whether loc is its head
// or its continuation.
func (b *Buffer) clearWideAt(loc Vec2) {
	c, ok := b.Get(loc)
	if !ok {
		return
	}
	blank := EmptyCell()
	if c.IsContinuation() {
		b.setRaw(V(loc.X-1, loc.Y), blank)
		b.setRaw(loc, blank)
	} else if c.Width == 2 {
		b.setRaw(loc, blank)
		b.setRaw(V(loc.X+1, loc.Y), blank)
	}
}

// SetRune places a single rune at loc with the given style.
func (b *Buffer) SetRune(loc Vec2, r rune, style Style) bool {
	return b.Set(loc, NewCell(r, style))
}

// SetString writes a string at loc, one grapheme cluster per cell, and
// returns the total display width consumed. Writing stops at the right
// edge without wrapping. Newlines are not interpreted; use Text for
// multi-line content.
func (b *Buffer) SetString(loc Vec2, s string, style Style) int {
	if loc.Y < 0 || loc.Y >= b.height {
		return 0
	}

	total := 0
	x := loc.X
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		c := CellFromString(cluster, style)

		if x >= b.width {
			break
		}
		if x < 0 {
			x += c.Width
			continue
		}
		if c.Width == 2 && x+1 >= b.width {
			break
		}

		b.Set(V(x, loc.Y), c)
		x += c.Width
		total += c.Width
	}
	return total
}

// SetStringClipped writes a string clipped to a rectangle. Glyphs outside
// clip are skipped; a wide glyph that would straddle the clip edge is
// dropped entirely. Returns the display width actually rendered.
func (b *Buffer) SetStringClipped(loc Vec2, s string, style Style, clip Rect) int {
	if loc.Y < clip.Y || loc.Y >= clip.Bottom() {
		return 0
	}

	total := 0
	x := loc.X
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		c := CellFromString(cluster, style)

		if x+c.Width <= clip.X {
			x += c.Width
			continue
		}
		if x >= clip.Right() {
			break
		}
		if x >= clip.X {
			if c.Width == 2 && x+1 >= clip.Right() {
				x += c.Width
				continue
			}
			b.Set(V(x, loc.Y), c)
			total += c.Width
		}
		x += c.Width
	}
	return total
}

// Fill overwrites every slot with the given cell. A wide fill cell is
// placed at every other column, with a styled blank closing out odd-width
// rows.
func (b *Buffer) Fill(c Cell) {
	if c.Width <= 1 {
		for i := range b.cells {
			b.cells[i] = c
		}
		return
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x += c.Width {
			b.Set(V(x, y), c)
		}
	}
}

// FillRect fills a rectangle with the given rune and style.
func (b *Buffer) FillRect(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	c := NewCell(r, style)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if c.Width == 2 && x+1 >= rect.Right() {
				b.SetRune(V(x, y), ' ', style)
				x++
			} else {
				b.Set(V(x, y), c)
				x += c.Width
			}
		}
	}
}

// Clear resets every cell to the default blank.
func (b *Buffer) Clear() {
	blank := EmptyCell()
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// ClearRect clears a rectangular region to blanks, expanding the clear to
// cover any wide glyph straddling the region's edges.
func (b *Buffer) ClearRect(rect Rect) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	blank := EmptyCell()
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c, _ := b.Get(V(x, y))
			if c.IsContinuation() && x == rect.X {
				b.setRaw(V(x-1, y), blank)
			}
			if c.Width == 2 && x+1 == rect.Right() {
				b.setRaw(V(x+1, y), blank)
			}
			b.setRaw(V(x, y), blank)
		}
	}
}

// SetStringGradient writes a string with a gradient applied per cluster
// along the string. Returns the display width consumed.
func (b *Buffer) SetStringGradient(loc Vec2, s string, g Gradient, base Style) int {
	if loc.Y < 0 || loc.Y >= b.height {
		return 0
	}

	n := uniseg.GraphemeClusterCount(s)
	if n == 0 {
		return 0
	}

	total := 0
	x := loc.X
	i := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)

		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		style := base
		style.Fg = g.At(t)

		c := CellFromString(cluster, style)
		if x >= b.width || (c.Width == 2 && x+1 >= b.width) {
			break
		}
		if x >= 0 {
			b.Set(V(x, loc.Y), c)
			total += c.Width
		}
		x += c.Width
		i++
	}
	return total
}

// FillGradient fills a rectangle with a gradient background in the
// gradient's direction.
func (b *Buffer) FillGradient(rect Rect, r rune, g Gradient, base Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	w := float64(rect.Width)
	h := float64(rect.Height)

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			var t float64
			switch g.Direction {
			case GradientVertical:
				t = float64(y-rect.Y) / h
			case GradientDiagonalDown:
				t = (float64(x-rect.X)/w + float64(y-rect.Y)/h) / 2
			case GradientDiagonalUp:
				t = (float64(x-rect.X)/w + float64(rect.Bottom()-1-y)/h) / 2
			default:
				t = float64(x-rect.X) / w
			}

			style := base
			style.Bg = g.At(t)
			b.SetRune(V(x, y), r, style)
		}
	}
}

// Diff returns the cells that differ between b (the previous frame) and
// next (the frame about to be shown), in row-major order. After a
// differing wide cell, the walk skips its continuation column: the
// placeholder's presence is fully determined by its predecessor, and
// reporting it separately would break the one-write-per-glyph guarantee.
//
// Both buffers must be the same size; mismatched sizes are a contract
// violation and panic.
func (b *Buffer) Diff(next *Buffer) []CellChange {
	if b.width != next.width || b.height != next.height {
		panic(fmt.Sprintf("tui: diff of unequal buffer sizes %dx%d vs %dx%d",
			b.width, b.height, next.width, next.height))
	}

	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; {
			i := y*b.width + x
			if b.cells[i].Equal(next.cells[i]) {
				x++
				continue
			}
			changes = append(changes, CellChange{Loc: V(x, y), Cell: next.cells[i]})
			x += max(next.cells[i].Width, 1)
		}
	}
	return changes
}

// Resize changes the buffer dimensions, preserving content in the
// overlapping region. New area is blank; content outside the new bounds
// is dropped.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Cell, width*height)
	blank := EmptyCell()
	for i := range cells {
		cells[i] = blank
	}

	copyW := min(width, b.width)
	copyH := min(height, b.height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*width:y*width+copyW], b.cells[y*b.width:y*b.width+copyW])
	}

	b.cells = cells
	b.width = width
	b.height = height
}

// Shrink resizes the buffer down to the minimal bounding box containing
// any non-empty cell. A wide glyph keeps its continuation column. An
// entirely blank buffer shrinks to zero size.
func (b *Buffer) Shrink() {
	maxX, maxY := -1, -1
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsEmpty() {
				continue
			}
			right := x + max(c.Width, 1) - 1
			if right > maxX {
				maxX = right
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	b.Resize(maxX+1, maxY+1)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Buffer{width: b.width, height: b.height, cells: cells}
}

// Render blits this buffer into another at loc, clipping at the
// destination bounds. Part of the Render contract.
func (b *Buffer) Render(loc Vec2, buf *Buffer) Vec2 {
	for y := 0; y < b.height; y++ {
		if loc.Y+y >= buf.height {
			break
		}
		for x := 0; x < b.width; x++ {
			if loc.X+x >= buf.width {
				break
			}
			buf.Set(V(loc.X+x, loc.Y+y), b.cells[y*b.width+x])
		}
	}
	return V(loc.X+b.width, loc.Y+max(b.height-1, 0))
}

// RenderClipped blits the buffer truncated to clip.
func (b *Buffer) RenderClipped(loc, clip Vec2, buf *Buffer) Vec2 {
	w := min(b.width, clip.X)
	h := min(b.height, clip.Y)
	for y := 0; y < h; y++ {
		if loc.Y+y >= buf.height {
			break
		}
		for x := 0; x < w; x++ {
			if loc.X+x >= buf.width {
				break
			}
			buf.Set(V(loc.X+x, loc.Y+y), b.cells[y*b.width+x])
		}
	}
	return V(loc.X+w, loc.Y+max(h-1, 0))
}

// String renders the buffer content for debugging. Continuation cells are
// skipped so wide glyphs print once.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Text == "" {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(c.Text)
			}
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the content with trailing spaces removed from each
// line, convenient for snapshot assertions.
func (b *Buffer) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Text == "" {
				line.WriteByte(' ')
			} else {
				line.WriteString(c.Text)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
