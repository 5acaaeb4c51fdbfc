package tui

// Event is the base interface for terminal events. Handle events with a
// type switch over the concrete types below.
type Event interface {
	// isEvent prevents external implementations so the set of event types
	// stays closed.
	isEvent()
}

// KeyEvent is a keyboard input event.
type KeyEvent struct {
	// Key is KeyRune for printable characters, or the specific constant
	// for special keys.
	Key Key

	// Rune holds the character for KeyRune events. Zero otherwise.
	Rune rune

	// Mod contains modifier flags.
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// IsRune reports whether this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Char returns the rune for KeyRune events, 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// Is reports whether the event matches a key and, when given, an exact
// modifier combination.
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// ResizeEvent is emitted when the terminal changes size.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// FocusEvent is emitted when the terminal gains or loses focus. Requires
// focus reporting to be enabled, which Init does by default.
type FocusEvent struct {
	Gained bool
}

func (FocusEvent) isEvent() {}

// MouseButton identifies the button involved in a mouse event.
type MouseButton int

const (
	// MouseLeft is the primary button.
	MouseLeft MouseButton = iota
	// MouseMiddle is the wheel click.
	MouseMiddle
	// MouseRight is the secondary button.
	MouseRight
	// MouseWheelUp is a scroll up tick.
	MouseWheelUp
	// MouseWheelDown is a scroll down tick.
	MouseWheelDown
	// MouseNone means no button, used for bare motion.
	MouseNone
)

// String returns a readable button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	case MouseWheelUp:
		return "wheel-up"
	case MouseWheelDown:
		return "wheel-down"
	case MouseNone:
		return "none"
	}
	return "unknown"
}

// MouseAction is the kind of mouse event.
type MouseAction int

const (
	// MousePress is a button press. Wheel ticks also report as presses.
	MousePress MouseAction = iota
	// MouseRelease is a button release.
	MouseRelease
	// MouseDrag is motion with a button held.
	MouseDrag
	// MouseMove is motion with no button held.
	MouseMove
)

// String returns a readable action name.
func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseDrag:
		return "drag"
	case MouseMove:
		return "move"
	}
	return "unknown"
}

// MouseEvent is a mouse input event. Coordinates are 0-indexed cells.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	X      int
	Y      int
	Mod    Modifier
}

func (MouseEvent) isEvent() {}

// Pos returns the event location as a Vec2.
func (e MouseEvent) Pos() Vec2 {
	return V(e.X, e.Y)
}
