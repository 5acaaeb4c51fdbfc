package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is a single slot in the terminal grid: a short text payload (one
// grapheme cluster, so emoji and ZWJ sequences stay intact), a style, and
// the display width measured at construction time. Width is 1 or 2; it is
// 0 only for the continuation placeholder written after a wide glyph.
//
// Cells are replaced wholesale on every Buffer.Set, never mutated in place.
type Cell struct {
	Text  string
	Style Style
	Width int
}

// EmptyCell returns the default blank cell: a single space, default style.
func EmptyCell() Cell {
	return Cell{Text: " ", Width: 1}
}

// NewCell creates a Cell from a rune with automatic width measurement.
func NewCell(r rune, style Style) Cell {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	if w > 2 {
		w = 2
	}
	return Cell{Text: string(r), Style: style, Width: w}
}

// CellFromString creates a Cell holding the first grapheme cluster of s.
// Multi-rune clusters (flags, skin-tone emoji) become one cell. An empty
// string yields the default blank cell.
func CellFromString(s string, style Style) Cell {
	cluster := firstGrapheme(s)
	if cluster == "" {
		c := EmptyCell()
		c.Style = style
		return c
	}
	return Cell{Text: cluster, Style: style, Width: clusterWidth(cluster)}
}

// ContinuationCell returns the placeholder written after a wide glyph.
// Its width is 0 and it carries the wide cell's style so background colors
// span both columns.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style, Width: 0}
}

// IsContinuation reports whether this cell is the second column of a wide
// glyph.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty reports whether the cell holds only whitespace (or nothing).
// Style is deliberately ignored: Shrink and sizing decisions are about
// visible glyphs, not background paint.
func (c Cell) IsEmpty() bool {
	return strings.TrimSpace(c.Text) == ""
}

// Equal reports whether both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Text == other.Text && c.Width == other.Width && c.Style.Equal(other.Style)
}

// Render paints the cell at loc. Part of the Render contract.
func (c Cell) Render(loc Vec2, buf *Buffer) Vec2 {
	buf.Set(loc, c)
	return loc
}

// Size reports the cell's footprint.
func (c Cell) Size() Vec2 {
	return V(max(c.Width, 1), 1)
}

// firstGrapheme returns the first grapheme cluster of s.
func firstGrapheme(s string) string {
	if s == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}

// displayWidth measures the display width of a single-line string, one
// grapheme cluster at a time, using the same clamping the grid applies.
func displayWidth(s string) int {
	total := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		total += clusterWidth(cluster)
	}
	return total
}

// clusterWidth measures the display width of one grapheme cluster,
// clamped to the 1..2 range the grid supports.
func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}
