package tui

import (
	"strings"
)

// Render is the contract every drawable element implements: paint yourself
// into buf starting at loc and return the location just past what you
// drew. The returned location lets callers chain elements without knowing
// their sizes up front.
type Render interface {
	Render(loc Vec2, buf *Buffer) Vec2
}

// Sized is an optional extension for elements that know their footprint
// without rendering. ElementSize uses it to skip the scratch-buffer
// measurement pass.
type Sized interface {
	Size() Vec2
}

// Clipped is an optional extension for elements that can truncate
// themselves to a budget instead of being cut off at the buffer edge.
type Clipped interface {
	RenderClipped(loc, clip Vec2, buf *Buffer) Vec2
}

// Text is an unstyled string element. Newlines start a new line at the
// original x; the returned location is past the last glyph of the final
// line.
type Text string

// Render implements Render.
func (t Text) Render(loc Vec2, buf *Buffer) Vec2 {
	return renderText(string(t), Style{}, loc, buf)
}

// Size implements Sized.
func (t Text) Size() Vec2 {
	return textSize(string(t))
}

// RenderClipped implements Clipped.
func (t Text) RenderClipped(loc, clip Vec2, buf *Buffer) Vec2 {
	return renderTextClipped(string(t), Style{}, loc, clip, buf)
}

// StyledText is a string element with a uniform style.
type StyledText struct {
	Text  string
	Style Style
}

// Styled pairs a string with a style for rendering.
func Styled(text string, style Style) StyledText {
	return StyledText{Text: text, Style: style}
}

// Render implements Render.
func (t StyledText) Render(loc Vec2, buf *Buffer) Vec2 {
	return renderText(t.Text, t.Style, loc, buf)
}

// Size implements Sized.
func (t StyledText) Size() Vec2 {
	return textSize(t.Text)
}

// RenderClipped implements Clipped.
func (t StyledText) RenderClipped(loc, clip Vec2, buf *Buffer) Vec2 {
	return renderTextClipped(t.Text, t.Style, loc, clip, buf)
}

// GradientText is a string element colored by a gradient along its length.
type GradientText struct {
	Text     string
	Gradient Gradient
	Style    Style
}

// Render implements Render.
func (t GradientText) Render(loc Vec2, buf *Buffer) Vec2 {
	w := buf.SetStringGradient(loc, t.Text, t.Gradient, t.Style)
	return V(loc.X+w, loc.Y)
}

// Size implements Sized.
func (t GradientText) Size() Vec2 {
	return textSize(t.Text)
}

// Lines renders each string on its own row at the same x.
type Lines []string

// Render implements Render.
func (l Lines) Render(loc Vec2, buf *Buffer) Vec2 {
	end := loc
	for i, line := range l {
		w := buf.SetString(V(loc.X, loc.Y+i), line, Style{})
		end = V(loc.X+w, loc.Y+i)
	}
	return end
}

// Size implements Sized.
func (l Lines) Size() Vec2 {
	maxW := 0
	for _, line := range l {
		if w := displayWidth(line); w > maxW {
			maxW = w
		}
	}
	return V(maxW, len(l))
}

// Group renders a sequence of elements, threading the end location of each
// into the start of the next.
type Group []Render

// Render implements Render.
func (g Group) Render(loc Vec2, buf *Buffer) Vec2 {
	for _, r := range g {
		loc = r.Render(loc, buf)
	}
	return loc
}

// RenderClipped implements Clipped. The horizontal budget shrinks by what
// each element consumes; the vertical budget is shared.
func (g Group) RenderClipped(loc, clip Vec2, buf *Buffer) Vec2 {
	start := loc
	for _, r := range g {
		remaining := V(clip.X-(loc.X-start.X), clip.Y)
		if remaining.X <= 0 {
			break
		}
		loc = RenderClippedAt(buf, loc, remaining, r)
	}
	return loc
}

// RenderAt draws elements into buf starting at loc, chaining end
// locations, and returns the final end location.
func RenderAt(buf *Buffer, loc Vec2, items ...Render) Vec2 {
	for _, r := range items {
		loc = r.Render(loc, buf)
	}
	return loc
}

// RenderClippedAt draws an element truncated to clip columns/rows. Elements
// without clipping support render into a clip-sized scratch buffer that is
// then blitted.
func RenderClippedAt(buf *Buffer, loc, clip Vec2, r Render) Vec2 {
	if clip.X <= 0 || clip.Y <= 0 {
		return loc
	}
	if c, ok := r.(Clipped); ok {
		return c.RenderClipped(loc, clip, buf)
	}

	scratch := NewBuffer(clip.X, clip.Y)
	end := r.Render(V(0, 0), scratch)
	scratch.Render(loc, buf)
	return V(loc.X+min(end.X, clip.X), loc.Y+min(end.Y, clip.Y-1))
}

// ElementSize measures an element's footprint. Elements reporting their
// own size are trusted; anything else is rendered into a scratch buffer
// which is shrunk to its content.
func ElementSize(r Render) Vec2 {
	if s, ok := r.(Sized); ok {
		return s.Size()
	}

	scratch := NewBuffer(measureWidth, measureHeight)
	r.Render(V(0, 0), scratch)
	scratch.Shrink()
	return scratch.Size()
}

// SizedBuffer renders elements into a buffer shrunk to exactly fit their
// content.
func SizedBuffer(items ...Render) *Buffer {
	scratch := NewBuffer(measureWidth, measureHeight)
	RenderAt(scratch, V(0, 0), items...)
	scratch.Shrink()
	return scratch
}

// Scratch dimensions for measuring elements that do not report a size.
const (
	measureWidth  = 256
	measureHeight = 256
)

// renderText writes s at loc, starting a new line at loc.X on every
// newline. Returns the end location of the last line.
func renderText(s string, style Style, loc Vec2, buf *Buffer) Vec2 {
	end := loc
	y := loc.Y
	for i, line := range strings.Split(s, "\n") {
		w := buf.SetString(V(loc.X, y+i), line, style)
		end = V(loc.X+w, y+i)
	}
	return end
}

func renderTextClipped(s string, style Style, loc, clip Vec2, buf *Buffer) Vec2 {
	rect := NewRect(loc.X, loc.Y, clip.X, clip.Y)
	end := loc
	for i, line := range strings.Split(s, "\n") {
		if i >= clip.Y {
			break
		}
		w := buf.SetStringClipped(V(loc.X, loc.Y+i), line, style, rect)
		end = V(loc.X+w, loc.Y+i)
	}
	return end
}

// textSize measures a possibly multi-line string.
func textSize(s string) Vec2 {
	maxW := 0
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := displayWidth(line); w > maxW {
			maxW = w
		}
	}
	return V(maxW, len(lines))
}
