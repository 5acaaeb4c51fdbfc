package tui

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// ANSITerminal implements Terminal with ANSI escape sequences. All
// operations append to an internal buffer; Sync writes the buffer to the
// output in one call so a frame hits the terminal atomically.
type ANSITerminal struct {
	out       io.Writer
	caps      Capabilities
	esc       *escBuilder
	lastStyle Style
	dirty     bool
	inFd      int
	outFd     int
	rawState  *rawModeState
	kittyOn   bool
}

// NewANSITerminal creates a terminal writing to out with input from in,
// with capabilities detected from the environment.
func NewANSITerminal(out io.Writer, in *os.File) *ANSITerminal {
	return NewANSITerminalWithCaps(out, in, DetectCapabilities())
}

// NewANSITerminalWithCaps creates a terminal with explicit capabilities,
// bypassing detection.
func NewANSITerminalWithCaps(out io.Writer, in *os.File, caps Capabilities) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		caps:  caps,
		esc:   newEscBuilder(4096),
		inFd:  -1,
		outFd: -1,
	}
	if in != nil {
		t.inFd = int(in.Fd())
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	return t
}

// Size returns the terminal dimensions, defaulting to 80x24 when the
// output is not a tty.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := termSize(t.outFd)
	if err != nil {
		return 80, 24
	}
	return w, h
}

// Flush queues cell changes. Cursor moves are elided for runs of
// consecutive cells on a row and style codes are only emitted when the
// style changes between cells.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}

	lastX, lastY := -1, -1
	for _, ch := range changes {
		// Continuation cells are the second column of a wide glyph; the
		// glyph itself already advanced the cursor over them.
		if ch.Cell.IsContinuation() {
			continue
		}

		if ch.Loc.Y != lastY || ch.Loc.X != lastX+1 {
			t.esc.MoveTo(ch.Loc.X, ch.Loc.Y)
		}

		if !ch.Cell.Style.Equal(t.lastStyle) {
			t.esc.SetStyle(ch.Cell.Style, t.caps)
			t.lastStyle = ch.Cell.Style
		}

		if ch.Cell.Text == "" {
			t.esc.WriteString(" ")
		} else {
			t.esc.WriteString(ch.Cell.Text)
		}

		lastX = ch.Loc.X
		if ch.Cell.Width > 1 {
			lastX = ch.Loc.X + ch.Cell.Width - 1
		}
		lastY = ch.Loc.Y
	}
	t.dirty = true
}

// Clear clears the screen and scrollback and homes the cursor.
func (t *ANSITerminal) Clear() {
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.esc.ClearScrollback()
	t.esc.MoveTo(0, 0)
	t.lastStyle = Style{}
	t.dirty = true
}

// ClearToEnd clears from the cursor to the end of the screen.
func (t *ANSITerminal) ClearToEnd() {
	t.esc.ClearToEndOfScreen()
	t.dirty = true
}

// SetCursor moves the cursor to a 0-indexed position.
func (t *ANSITerminal) SetCursor(x, y int) {
	t.esc.MoveTo(x, y)
	t.dirty = true
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.esc.HideCursor()
	t.dirty = true
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.esc.ShowCursor()
	t.dirty = true
}

// SetCursorStyle selects the cursor shape.
func (t *ANSITerminal) SetCursorStyle(style CursorStyle) {
	t.esc.SetCursorStyle(style)
	t.dirty = true
}

// EnterRawMode puts the input fd into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	if t.rawState != nil {
		return nil
	}
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return errors.Wrap(err, "entering raw mode")
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the input mode saved by EnterRawMode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(t.inFd, t.rawState)
	t.rawState = nil
	return errors.Wrap(err, "exiting raw mode")
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.esc.EnterAltScreen()
	t.dirty = true
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	t.esc.ExitAltScreen()
	t.dirty = true
}

// EnableMouse turns on mouse reporting.
func (t *ANSITerminal) EnableMouse() {
	t.esc.EnableMouse()
	t.dirty = true
}

// DisableMouse turns mouse reporting off.
func (t *ANSITerminal) DisableMouse() {
	t.esc.DisableMouse()
	t.dirty = true
}

// EnableFocusReporting turns on focus reports.
func (t *ANSITerminal) EnableFocusReporting() {
	t.esc.EnableFocusReporting()
	t.dirty = true
}

// DisableFocusReporting turns focus reports off.
func (t *ANSITerminal) DisableFocusReporting() {
	t.esc.DisableFocusReporting()
	t.dirty = true
}

// EnableLineWrap re-enables automatic line wrap.
func (t *ANSITerminal) EnableLineWrap() {
	t.esc.EnableLineWrap()
	t.dirty = true
}

// DisableLineWrap disables automatic line wrap.
func (t *ANSITerminal) DisableLineWrap() {
	t.esc.DisableLineWrap()
	t.dirty = true
}

// PushKeyboardEnhancements enables the kitty keyboard protocol when the
// terminal supports it.
func (t *ANSITerminal) PushKeyboardEnhancements() error {
	if !t.caps.Kitty {
		return errors.New("terminal does not support keyboard enhancements")
	}
	t.esc.PushKeyboardEnhancements()
	t.kittyOn = true
	t.dirty = true
	return nil
}

// PopKeyboardEnhancements disables the kitty keyboard protocol.
func (t *ANSITerminal) PopKeyboardEnhancements() {
	if !t.kittyOn {
		return
	}
	t.esc.PopKeyboardEnhancements()
	t.kittyOn = false
	t.dirty = true
}

// BeginSyncUpdate opens a synchronized update block.
func (t *ANSITerminal) BeginSyncUpdate() {
	t.esc.BeginSyncUpdate()
	t.dirty = true
}

// EndSyncUpdate closes a synchronized update block.
func (t *ANSITerminal) EndSyncUpdate() {
	t.esc.EndSyncUpdate()
	t.dirty = true
}

// Sync writes all buffered output to the terminal.
func (t *ANSITerminal) Sync() error {
	if !t.dirty {
		return nil
	}
	_, err := t.out.Write(t.esc.Bytes())
	t.esc.Reset()
	t.dirty = false
	return errors.Wrap(err, "flushing terminal output")
}

// WriteDirect appends raw bytes to the output buffer. Use for sequences
// the builder does not cover.
func (t *ANSITerminal) WriteDirect(b []byte) (int, error) {
	t.esc.WriteBytes(b)
	t.dirty = true
	return len(b), nil
}

// Caps returns the terminal capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}

// SetCaps overrides the detected capabilities.
func (t *ANSITerminal) SetCaps(caps Capabilities) {
	t.caps = caps
}
