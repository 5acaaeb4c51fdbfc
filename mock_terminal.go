package tui

import (
	"errors"
	"strings"
)

var errUnsupportedKeyboard = errors.New("terminal does not support keyboard enhancements")

// MockTerminal implements Terminal for tests. It applies flushed changes
// to an internal grid for content assertions and records every operation
// in order for protocol assertions.
type MockTerminal struct {
	width, height int
	cells         []Cell

	cursorX, cursorY int
	cursorHidden     bool
	cursorStyle      CursorStyle
	inRawMode        bool
	inAltScreen      bool
	mouseEnabled     bool
	focusEnabled     bool
	wrapDisabled     bool
	syncDepth        int
	kittyPushed      bool
	caps             Capabilities

	// Ops records operation names in call order. Sync is recorded too,
	// so tests can assert what lands in which flush.
	Ops []string

	// FlushedChanges accumulates every change passed to Flush.
	FlushedChanges []CellChange

	// SyncCount counts Sync calls.
	SyncCount int

	// Direct accumulates WriteDirect payloads.
	Direct []byte
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock of the given dimensions with generous
// capabilities.
func NewMockTerminal(width, height int) *MockTerminal {
	cells := make([]Cell, width*height)
	blank := EmptyCell()
	for i := range cells {
		cells[i] = blank
	}
	return &MockTerminal{
		width:  width,
		height: height,
		cells:  cells,
		caps: Capabilities{
			Colors:    ColorTrue,
			Unicode:   true,
			TrueColor: true,
			AltScreen: true,
			Kitty:     true,
		},
	}
}

func (m *MockTerminal) record(op string) {
	m.Ops = append(m.Ops, op)
}

// SetSize changes the reported dimensions, simulating a resize. The grid
// is reallocated blank.
func (m *MockTerminal) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.cells = make([]Cell, width*height)
	blank := EmptyCell()
	for i := range m.cells {
		m.cells[i] = blank
	}
}

// SetCaps overrides the mock's capabilities.
func (m *MockTerminal) SetCaps(caps Capabilities) {
	m.caps = caps
}

func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

func (m *MockTerminal) Flush(changes []CellChange) {
	m.record("flush")
	for _, ch := range changes {
		if ch.Loc.X >= 0 && ch.Loc.X < m.width && ch.Loc.Y >= 0 && ch.Loc.Y < m.height {
			m.cells[ch.Loc.Y*m.width+ch.Loc.X] = ch.Cell
		}
	}
	m.FlushedChanges = append(m.FlushedChanges, changes...)
}

func (m *MockTerminal) Clear() {
	m.record("clear")
	blank := EmptyCell()
	for i := range m.cells {
		m.cells[i] = blank
	}
	m.cursorX, m.cursorY = 0, 0
}

func (m *MockTerminal) ClearToEnd() {
	m.record("clearToEnd")
	blank := EmptyCell()
	for i := m.cursorY*m.width + m.cursorX; i < len(m.cells); i++ {
		m.cells[i] = blank
	}
}

func (m *MockTerminal) SetCursor(x, y int) {
	m.record("setCursor")
	m.cursorX, m.cursorY = x, y
}

func (m *MockTerminal) HideCursor() {
	m.record("hideCursor")
	m.cursorHidden = true
}

func (m *MockTerminal) ShowCursor() {
	m.record("showCursor")
	m.cursorHidden = false
}

func (m *MockTerminal) SetCursorStyle(style CursorStyle) {
	m.record("setCursorStyle")
	m.cursorStyle = style
}

func (m *MockTerminal) EnterRawMode() error {
	m.record("enterRaw")
	m.inRawMode = true
	return nil
}

func (m *MockTerminal) ExitRawMode() error {
	m.record("exitRaw")
	m.inRawMode = false
	return nil
}

func (m *MockTerminal) EnterAltScreen() {
	m.record("enterAlt")
	m.inAltScreen = true
}

func (m *MockTerminal) ExitAltScreen() {
	m.record("exitAlt")
	m.inAltScreen = false
}

func (m *MockTerminal) EnableMouse() {
	m.record("enableMouse")
	m.mouseEnabled = true
}

func (m *MockTerminal) DisableMouse() {
	m.record("disableMouse")
	m.mouseEnabled = false
}

func (m *MockTerminal) EnableFocusReporting() {
	m.record("enableFocus")
	m.focusEnabled = true
}

func (m *MockTerminal) DisableFocusReporting() {
	m.record("disableFocus")
	m.focusEnabled = false
}

func (m *MockTerminal) EnableLineWrap() {
	m.record("enableWrap")
	m.wrapDisabled = false
}

func (m *MockTerminal) DisableLineWrap() {
	m.record("disableWrap")
	m.wrapDisabled = true
}

func (m *MockTerminal) PushKeyboardEnhancements() error {
	if !m.caps.Kitty {
		return errUnsupportedKeyboard
	}
	m.record("pushKeyboard")
	m.kittyPushed = true
	return nil
}

func (m *MockTerminal) PopKeyboardEnhancements() {
	m.record("popKeyboard")
	m.kittyPushed = false
}

func (m *MockTerminal) BeginSyncUpdate() {
	m.record("beginSync")
	m.syncDepth++
}

func (m *MockTerminal) EndSyncUpdate() {
	m.record("endSync")
	m.syncDepth--
}

func (m *MockTerminal) Sync() error {
	m.record("sync")
	m.SyncCount++
	return nil
}

func (m *MockTerminal) WriteDirect(b []byte) (int, error) {
	m.record("writeDirect")
	m.Direct = append(m.Direct, b...)
	return len(b), nil
}

func (m *MockTerminal) Caps() Capabilities {
	return m.caps
}

// CellAt returns the cell the mock holds at a position.
func (m *MockTerminal) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// Content renders the mock's grid as text with trailing spaces trimmed.
func (m *MockTerminal) Content() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		var line strings.Builder
		for x := 0; x < m.width; x++ {
			c := m.cells[y*m.width+x]
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
		if y < m.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// InRawMode reports whether the mock is in raw mode.
func (m *MockTerminal) InRawMode() bool {
	return m.inRawMode
}

// InAltScreen reports whether the mock is on the alternate screen.
func (m *MockTerminal) InAltScreen() bool {
	return m.inAltScreen
}

// CursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) CursorHidden() bool {
	return m.cursorHidden
}

// CursorPos returns the mock's cursor position.
func (m *MockTerminal) CursorPos() (int, int) {
	return m.cursorX, m.cursorY
}
