package tui

import (
	"strconv"
)

// escBuilder builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current buffer length.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// privateMode emits CSI ? code h (set) or l (reset).
func (e *escBuilder) privateMode(code int, on bool) {
	e.writeCSI()
	e.buf = append(e.buf, '?')
	e.writeInt(code)
	if on {
		e.buf = append(e.buf, 'h')
	} else {
		e.buf = append(e.buf, 'l')
	}
}

// MoveTo moves the cursor to a 0-indexed position. ANSI positions are
// 1-indexed.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// MoveUp moves the cursor up n rows.
func (e *escBuilder) MoveUp(n int) {
	if n <= 0 {
		return
	}
	e.writeCSI()
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, 'A')
}

// MoveToColumn moves the cursor to a 0-indexed column on the current row.
func (e *escBuilder) MoveToColumn(x int) {
	e.writeCSI()
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'G')
}

// ClearScreen clears the visible screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// ClearScrollback clears the scrollback buffer.
func (e *escBuilder) ClearScrollback() {
	e.writeCSI()
	e.buf = append(e.buf, '3', 'J')
}

// ClearToEndOfScreen clears from the cursor to the end of the screen.
func (e *escBuilder) ClearToEndOfScreen() {
	e.writeCSI()
	e.buf = append(e.buf, 'J')
}

// ClearLine clears the entire current line.
func (e *escBuilder) ClearLine() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'K')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.privateMode(25, false)
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.privateMode(25, true)
}

// SetCursorStyle emits DECSCUSR for the given style.
func (e *escBuilder) SetCursorStyle(style CursorStyle) {
	e.writeCSI()
	e.writeInt(int(style))
	e.buf = append(e.buf, ' ', 'q')
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.privateMode(1049, true)
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.privateMode(1049, false)
}

// BeginSyncUpdate opens a synchronized update block (mode 2026). The
// terminal holds output until the block closes, then displays it
// atomically. Terminals without support ignore the sequence.
func (e *escBuilder) BeginSyncUpdate() {
	e.privateMode(2026, true)
}

// EndSyncUpdate closes a synchronized update block.
func (e *escBuilder) EndSyncUpdate() {
	e.privateMode(2026, false)
}

// EnableMouse turns on button tracking with SGR-1006 coordinate encoding,
// plus any-motion tracking so hover positions are reported.
func (e *escBuilder) EnableMouse() {
	e.privateMode(1000, true)
	e.privateMode(1003, true)
	e.privateMode(1006, true)
}

// DisableMouse turns mouse reporting off.
func (e *escBuilder) DisableMouse() {
	e.privateMode(1006, false)
	e.privateMode(1003, false)
	e.privateMode(1000, false)
}

// EnableFocusReporting turns on focus in/out reports (mode 1004).
func (e *escBuilder) EnableFocusReporting() {
	e.privateMode(1004, true)
}

// DisableFocusReporting turns focus reports off.
func (e *escBuilder) DisableFocusReporting() {
	e.privateMode(1004, false)
}

// EnableLineWrap re-enables automatic line wrap (mode 7).
func (e *escBuilder) EnableLineWrap() {
	e.privateMode(7, true)
}

// DisableLineWrap disables automatic line wrap so writes to the last
// column do not scroll.
func (e *escBuilder) DisableLineWrap() {
	e.privateMode(7, false)
}

// PushKeyboardEnhancements pushes the kitty keyboard protocol flags
// (disambiguate escape codes).
func (e *escBuilder) PushKeyboardEnhancements() {
	e.buf = append(e.buf, '\x1b', '[', '>', '1', 'u')
}

// PopKeyboardEnhancements pops the kitty keyboard protocol flags.
func (e *escBuilder) PopKeyboardEnhancements() {
	e.buf = append(e.buf, '\x1b', '[', '<', 'u')
}

// ResetStyle resets all text attributes.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle emits one SGR sequence for the full style, starting from a
// reset so stale attributes never leak between cells.
func (e *escBuilder) SetStyle(s Style, caps Capabilities) {
	e.writeCSI()
	e.buf = append(e.buf, '0')

	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.HasAttr(AttrItalic) {
		e.buf = append(e.buf, ';', '3')
	}
	if s.HasAttr(AttrUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if s.HasAttr(AttrBlink) {
		e.buf = append(e.buf, ';', '5')
	}
	if s.HasAttr(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}
	if s.HasAttr(AttrStrikethrough) {
		e.buf = append(e.buf, ';', '9')
	}

	e.appendColor(s.Fg, true, caps)
	e.appendColor(s.Bg, false, caps)

	e.buf = append(e.buf, 'm')
}

func (e *escBuilder) appendColor(c Color, fg bool, caps Capabilities) {
	if c.IsDefault() {
		return
	}

	base := 48
	if fg {
		base = 38
	}

	switch c.Type() {
	case ColorANSI:
		idx := c.ANSI()
		switch {
		case idx < 16 && caps.Colors >= Color16:
			// 30-37/90-97 foreground, 40-47/100-107 background.
			code := int(idx)
			if code < 8 {
				code += base - 8 // 30-37 or 40-47
			} else {
				code += base + 44 // 90-97 or 100-107
			}
			e.buf = append(e.buf, ';')
			e.writeInt(code)
		case caps.Colors >= Color256:
			e.buf = append(e.buf, ';')
			e.writeInt(base)
			e.buf = append(e.buf, ';', '5', ';')
			e.writeInt(int(idx))
		}

	case ColorRGB:
		if caps.TrueColor && caps.Colors >= ColorTrue {
			r, g, b := c.RGB()
			e.buf = append(e.buf, ';')
			e.writeInt(base)
			e.buf = append(e.buf, ';', '2', ';')
			e.writeInt(int(r))
			e.buf = append(e.buf, ';')
			e.writeInt(int(g))
			e.buf = append(e.buf, ';')
			e.writeInt(int(b))
		} else if caps.Colors >= Color256 {
			e.buf = append(e.buf, ';')
			e.writeInt(base)
			e.buf = append(e.buf, ';', '5', ';')
			e.writeInt(int(c.ToANSI().ANSI()))
		}
	}
}

// WriteString appends a string verbatim.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

// WriteBytes appends bytes verbatim.
func (e *escBuilder) WriteBytes(b []byte) {
	e.buf = append(e.buf, b...)
}
