package tui

import (
	"time"

	"github.com/pkg/errors"
)

// Window owns a terminal session and a pair of frame buffers. Drawing
// goes into the active buffer; Update diffs it against what is on screen,
// writes only the differing cells, and swaps the buffers. The previous
// frame is the screen's source of truth between updates.
type Window struct {
	term   Terminal
	reader EventReader

	buffers [2]*Buffer
	active  int

	events   []Event
	mousePos Vec2

	// Desired cursor state, synced to the terminal only when it changes.
	cursorVisible bool
	cursorPos     Vec2
	cursorStyle   CursorStyle
	lastVisible   bool
	lastPos       Vec2
	lastStyle     CursorStyle
	cursorSynced  bool

	inline      *inlineState
	justResized bool
	restored    bool

	mouseEnabled bool
	focusEnabled bool
	keyboardOn   bool
}

// inlineState tracks an inline session, which renders in a fixed-height
// strip at the bottom of the normal screen instead of the alternate
// screen. Activation is deferred to the first Update so nothing is drawn
// before the caller has prepared a frame.
type inlineState struct {
	height   int
	startRow int
	active   bool
}

// WindowOption configures a Window before the session starts.
type WindowOption func(*Window) error

// WithoutMouse disables mouse reporting. Enabled by default.
func WithoutMouse() WindowOption {
	return func(w *Window) error {
		w.mouseEnabled = false
		return nil
	}
}

// WithoutFocusReporting disables focus gained/lost events. Enabled by
// default.
func WithoutFocusReporting() WindowOption {
	return func(w *Window) error {
		w.focusEnabled = false
		return nil
	}
}

// WithCursor starts the session with the cursor visible at the origin.
// Hidden by default.
func WithCursor() WindowOption {
	return func(w *Window) error {
		w.cursorVisible = true
		return nil
	}
}

// Buffer returns the active buffer. Draw into it, then call Update to
// show the frame.
func (w *Window) Buffer() *Buffer {
	return w.buffers[w.active]
}

// Size returns the drawable dimensions.
func (w *Window) Size() Vec2 {
	return w.buffers[w.active].Size()
}

// Terminal returns the underlying terminal.
func (w *Window) Terminal() Terminal {
	return w.term
}

// SetCursor places the cursor at loc and makes it visible on the next
// Update.
func (w *Window) SetCursor(loc Vec2) {
	w.cursorPos = loc
	w.cursorVisible = true
}

// HideCursor hides the cursor on the next Update.
func (w *Window) HideCursor() {
	w.cursorVisible = false
}

// SetCursorStyle selects the cursor shape, applied on the next Update.
func (w *Window) SetCursorStyle(style CursorStyle) {
	w.cursorStyle = style
}

// Cursor returns the cursor position and whether it is visible.
func (w *Window) Cursor() (Vec2, bool) {
	return w.cursorPos, w.cursorVisible
}

// Keyboard enables the kitty keyboard protocol for disambiguated key
// reporting. Fails when the terminal does not support it.
func (w *Window) Keyboard() error {
	if w.keyboardOn {
		return nil
	}
	if err := w.term.PushKeyboardEnhancements(); err != nil {
		return errors.Wrap(err, "enabling keyboard enhancements")
	}
	w.keyboardOn = true
	return nil
}

// RenderAt draws elements into the active buffer at loc.
func (w *Window) RenderAt(loc Vec2, items ...Render) Vec2 {
	return RenderAt(w.buffers[w.active], loc, items...)
}

// Update shows the active buffer, swaps buffers, and polls for events
// waiting up to the given timeout for the first one. See UpdateEvents to
// drain without rendering.
func (w *Window) Update(poll time.Duration) error {
	if err := w.render(); err != nil {
		return err
	}
	w.pollEvents(poll)
	return nil
}

// UpdateEvents polls for events without rendering a frame.
func (w *Window) UpdateEvents(poll time.Duration) {
	w.pollEvents(poll)
}
