package tui

// BorderStyle selects a set of box-drawing characters.
type BorderStyle int

const (
	// BorderSingle uses single-line characters.
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line characters.
	BorderDouble
	// BorderRounded uses single lines with rounded corners.
	BorderRounded
	// BorderThick uses heavy lines.
	BorderThick
	// BorderSquare uses plus signs and dashes, safe for ASCII-only
	// terminals.
	BorderSquare
)

// BorderChars holds the eight characters of a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	case BorderSquare:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// Border draws a rectangular frame. Its Render return value is the
// top-left of the interior, so content can chain directly inside it.
type Border struct {
	Size  Vec2
	Style BorderStyle
	Attrs Style
}

// NewBorder creates a border of the given outer size.
func NewBorder(size Vec2, style BorderStyle) Border {
	return Border{Size: size, Style: style}
}

// WithStyle returns a copy drawn with the given text style.
func (b Border) WithStyle(s Style) Border {
	b.Attrs = s
	return b
}

// Render implements Render. Borders smaller than 2x2 have no interior
// and draw nothing.
func (b Border) Render(loc Vec2, buf *Buffer) Vec2 {
	w, h := b.Size.X, b.Size.Y
	if w < 2 || h < 2 {
		return loc
	}

	chars := b.Style.Chars()

	buf.SetRune(loc, chars.TopLeft, b.Attrs)
	buf.SetRune(V(loc.X+w-1, loc.Y), chars.TopRight, b.Attrs)
	buf.SetRune(V(loc.X, loc.Y+h-1), chars.BottomLeft, b.Attrs)
	buf.SetRune(V(loc.X+w-1, loc.Y+h-1), chars.BottomRight, b.Attrs)

	for x := 1; x < w-1; x++ {
		buf.SetRune(V(loc.X+x, loc.Y), chars.Top, b.Attrs)
		buf.SetRune(V(loc.X+x, loc.Y+h-1), chars.Bottom, b.Attrs)
	}
	for y := 1; y < h-1; y++ {
		buf.SetRune(V(loc.X, loc.Y+y), chars.Left, b.Attrs)
		buf.SetRune(V(loc.X+w-1, loc.Y+y), chars.Right, b.Attrs)
	}

	return V(loc.X+1, loc.Y+1)
}

// Inner returns the interior rectangle of a border drawn at loc.
func (b Border) Inner(loc Vec2) Rect {
	if b.Size.X < 2 || b.Size.Y < 2 {
		return NewRect(loc.X, loc.Y, 0, 0)
	}
	return NewRect(loc.X+1, loc.Y+1, b.Size.X-2, b.Size.Y-2)
}
