package tui

import (
	"os"

	"github.com/pkg/errors"

	"github.com/termforge/tui/internal/debug"
)

// Init starts a full-screen session on the process terminal: raw mode,
// alternate screen, hidden cursor, mouse and focus reporting. Call
// Restore before exiting, ideally via defer alongside HandlePanics.
func Init(opts ...WindowOption) (*Window, error) {
	term := NewANSITerminal(os.Stdout, os.Stdin)
	reader, err := NewEventReader(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "creating event reader")
	}
	return NewWindow(term, reader, opts...)
}

// InitInline starts an inline session that owns only the bottom rows of
// the screen, leaving scrollback intact. The strip is not drawn until the
// first Update.
func InitInline(height int, opts ...WindowOption) (*Window, error) {
	if height < 1 {
		return nil, errors.New("inline height must be at least 1 row")
	}

	term := NewANSITerminal(os.Stdout, os.Stdin)
	reader, err := NewEventReader(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "creating event reader")
	}
	return newInlineWindow(term, reader, height, opts...)
}

// NewWindow starts a full-screen session on the given terminal and
// reader. Used directly in tests with mocks; Init wires the real ones.
func NewWindow(term Terminal, reader EventReader, opts ...WindowOption) (*Window, error) {
	w := &Window{
		term:         term,
		reader:       reader,
		mouseEnabled: true,
		focusEnabled: true,
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	width, height := term.Size()
	w.buffers[0] = NewBuffer(width, height)
	w.buffers[1] = NewBuffer(width, height)

	if err := term.EnterRawMode(); err != nil {
		return nil, errors.Wrap(err, "starting session")
	}
	term.EnterAltScreen()
	term.DisableLineWrap()
	if w.cursorVisible {
		term.ShowCursor()
	} else {
		term.HideCursor()
	}
	if w.mouseEnabled {
		term.EnableMouse()
	}
	if w.focusEnabled {
		term.EnableFocusReporting()
	}
	term.Clear()
	if err := term.Sync(); err != nil {
		restoreErr := term.ExitRawMode()
		if restoreErr != nil {
			debug.Log("raw mode restore failed after setup error: %v", restoreErr)
		}
		return nil, errors.Wrap(err, "starting session")
	}

	debug.Log("session started: %dx%d", width, height)
	return w, nil
}

// NewInlineWindow starts an inline session on the given terminal and
// reader.
func NewInlineWindow(term Terminal, reader EventReader, height int, opts ...WindowOption) (*Window, error) {
	if height < 1 {
		return nil, errors.New("inline height must be at least 1 row")
	}
	return newInlineWindow(term, reader, height, opts...)
}

func newInlineWindow(term Terminal, reader EventReader, height int, opts ...WindowOption) (*Window, error) {
	w := &Window{
		term:         term,
		reader:       reader,
		mouseEnabled: true,
		focusEnabled: true,
		inline:       &inlineState{height: height},
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	width, termHeight := term.Size()
	if height > termHeight {
		height = termHeight
		w.inline.height = termHeight
	}
	w.inline.startRow = termHeight - height
	w.buffers[0] = NewBuffer(width, height)
	w.buffers[1] = NewBuffer(width, height)

	if err := term.EnterRawMode(); err != nil {
		return nil, errors.Wrap(err, "starting inline session")
	}
	if w.mouseEnabled {
		term.EnableMouse()
	}
	if w.focusEnabled {
		term.EnableFocusReporting()
	}
	if !w.cursorVisible {
		term.HideCursor()
	}
	if err := term.Sync(); err != nil {
		restoreErr := term.ExitRawMode()
		if restoreErr != nil {
			debug.Log("raw mode restore failed after setup error: %v", restoreErr)
		}
		return nil, errors.Wrap(err, "starting inline session")
	}

	debug.Log("inline session started: %dx%d at row %d", width, height, w.inline.startRow)
	return w, nil
}

// Restore returns the terminal to its normal state. Idempotent; safe to
// call from both a defer and a panic handler.
func (w *Window) Restore() error {
	if w.restored {
		return nil
	}
	w.restored = true
	clearPanicWindow(w)

	if w.keyboardOn {
		w.term.PopKeyboardEnhancements()
		w.keyboardOn = false
	}
	if w.mouseEnabled {
		w.term.DisableMouse()
	}
	if w.focusEnabled {
		w.term.DisableFocusReporting()
	}
	w.term.ShowCursor()

	if w.inline != nil {
		// Leave the strip on screen and park the cursor below it.
		if w.inline.active {
			w.term.SetCursor(0, w.inline.startRow+w.inline.height-1)
			w.term.WriteDirect([]byte("\r\n"))
		}
	} else {
		w.term.EnableLineWrap()
		w.term.ExitAltScreen()
	}

	syncErr := w.term.Sync()
	rawErr := w.term.ExitRawMode()
	readerErr := w.reader.Close()

	debug.Log("session restored")
	if rawErr != nil {
		return errors.Wrap(rawErr, "restoring terminal")
	}
	if syncErr != nil {
		return syncErr
	}
	return readerErr
}
