package tui

// ColorCapability is the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone is a monochrome terminal.
	ColorNone ColorCapability = iota
	// Color16 is the basic 16-color ANSI set.
	Color16
	// Color256 is the 256-entry palette.
	Color256
	// ColorTrue is 24-bit RGB.
	ColorTrue
)

// CursorStyle selects the cursor shape via DECSCUSR.
type CursorStyle int

const (
	// CursorDefault is the terminal's configured default shape.
	CursorDefault CursorStyle = iota
	// CursorBlinkingBlock is a blinking block.
	CursorBlinkingBlock
	// CursorSteadyBlock is a steady block.
	CursorSteadyBlock
	// CursorBlinkingUnderline is a blinking underline.
	CursorBlinkingUnderline
	// CursorSteadyUnderline is a steady underline.
	CursorSteadyUnderline
	// CursorBlinkingBar is a blinking vertical bar.
	CursorBlinkingBar
	// CursorSteadyBar is a steady vertical bar.
	CursorSteadyBar
)

// Capabilities describes what the terminal supports.
type Capabilities struct {
	// Colors is the level of color support.
	Colors ColorCapability
	// Unicode reports whether the terminal renders non-ASCII glyphs.
	Unicode bool
	// TrueColor reports 24-bit RGB support.
	TrueColor bool
	// AltScreen reports alternate screen buffer support.
	AltScreen bool
	// Kitty reports kitty keyboard protocol support.
	Kitty bool
}

// Terminal abstracts the output side of a session. The production
// implementation is ANSITerminal; tests use MockTerminal. Mode-changing
// operations take effect on the next Sync, which flushes buffered output
// in one write.
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// Flush queues the given cell changes, expected in row-major order.
	Flush(changes []CellChange)

	// Clear clears the whole screen.
	Clear()

	// ClearToEnd clears from the cursor to the end of the screen.
	ClearToEnd()

	// SetCursor moves the cursor to a 0-indexed position.
	SetCursor(x, y int)

	// HideCursor makes the cursor invisible.
	HideCursor()

	// ShowCursor makes the cursor visible.
	ShowCursor()

	// SetCursorStyle selects the cursor shape.
	SetCursorStyle(style CursorStyle)

	// EnterRawMode puts the input into raw mode.
	EnterRawMode() error

	// ExitRawMode restores the previous input mode.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen()

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen()

	// EnableMouse turns on mouse reporting.
	EnableMouse()

	// DisableMouse turns mouse reporting off.
	DisableMouse()

	// EnableFocusReporting turns on focus gained/lost reports.
	EnableFocusReporting()

	// DisableFocusReporting turns focus reports off.
	DisableFocusReporting()

	// EnableLineWrap re-enables automatic line wrap.
	EnableLineWrap()

	// DisableLineWrap disables automatic line wrap.
	DisableLineWrap()

	// PushKeyboardEnhancements enables the kitty keyboard protocol.
	// Returns an error when the terminal does not support it.
	PushKeyboardEnhancements() error

	// PopKeyboardEnhancements disables the kitty keyboard protocol.
	PopKeyboardEnhancements()

	// BeginSyncUpdate opens a synchronized update block.
	BeginSyncUpdate()

	// EndSyncUpdate closes a synchronized update block.
	EndSyncUpdate()

	// Sync flushes all buffered output to the terminal.
	Sync() error

	// WriteDirect writes raw bytes into the output buffer.
	WriteDirect(b []byte) (int, error)

	// Caps returns the terminal capabilities.
	Caps() Capabilities
}
