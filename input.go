package tui

// Input accumulates per-frame input state on top of the raw event queue:
// which keys are held, which went down this frame, where the mouse is and
// what its buttons are doing. Call Advance once per frame with the
// window's events.
type Input struct {
	held     map[Key]bool
	pressed  map[Key]bool
	runes    []rune
	mousePos Vec2
	buttons  map[MouseButton]bool
	clicked  map[MouseButton]bool
	scroll   int
}

// NewInput returns an empty input tracker.
func NewInput() *Input {
	return &Input{
		held:    make(map[Key]bool),
		pressed: make(map[Key]bool),
		buttons: make(map[MouseButton]bool),
		clicked: make(map[MouseButton]bool),
	}
}

// Advance consumes one frame of events. Terminals only report key
// presses, not releases, so a key counts as held for exactly the frame it
// arrived unless keyboard enhancements supply repeats.
func (in *Input) Advance(events []Event) {
	clear(in.held)
	clear(in.pressed)
	clear(in.clicked)
	in.runes = in.runes[:0]
	in.scroll = 0

	for _, ev := range events {
		switch e := ev.(type) {
		case KeyEvent:
			in.held[e.Key] = true
			in.pressed[e.Key] = true
			if e.IsRune() {
				in.runes = append(in.runes, e.Rune)
			}
		case MouseEvent:
			in.mousePos = e.Pos()
			switch e.Action {
			case MousePress:
				switch e.Button {
				case MouseWheelUp:
					in.scroll--
				case MouseWheelDown:
					in.scroll++
				default:
					in.buttons[e.Button] = true
					in.clicked[e.Button] = true
				}
			case MouseRelease:
				delete(in.buttons, e.Button)
			}
		}
	}
}

// Pressed reports whether the key went down this frame.
func (in *Input) Pressed(key Key) bool {
	return in.pressed[key]
}

// Held reports whether the key is down.
func (in *Input) Held(key Key) bool {
	return in.held[key]
}

// Runes returns the printable characters typed this frame.
func (in *Input) Runes() []rune {
	return in.runes
}

// MousePos returns the last known mouse position.
func (in *Input) MousePos() Vec2 {
	return in.mousePos
}

// MouseDown reports whether the button is held.
func (in *Input) MouseDown(b MouseButton) bool {
	return in.buttons[b]
}

// Clicked reports whether the button went down this frame.
func (in *Input) Clicked(b MouseButton) bool {
	return in.clicked[b]
}

// ClickedIn reports whether the button went down this frame with the
// mouse inside rect.
func (in *Input) ClickedIn(rect Rect, b MouseButton) bool {
	return in.clicked[b] && rect.Contains(in.mousePos)
}

// Scroll returns the net wheel movement this frame. Negative is up.
func (in *Input) Scroll() int {
	return in.scroll
}
