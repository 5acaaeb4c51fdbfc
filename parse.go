package tui

import "unicode/utf8"

// parseInput converts raw terminal bytes into events. It handles printable
// UTF-8, control characters, CSI sequences (arrows, function keys, focus
// reports, SGR mouse, kitty-encoded keys), SS3 function keys, and Alt+key
// prefixed input. Unparseable escape prefixes degrade to a bare Escape.
func parseInput(data []byte) []Event {
	var events []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			switch data[i+1] {
			case '[':
				if i+2 < len(data) && data[i+2] == '<' {
					if ev, consumed := parseMouseSGR(data[i:]); consumed > 0 {
						events = append(events, ev)
						i += consumed
						continue
					}
				}
				if ev, consumed := parseCSI(data[i:]); consumed > 0 {
					if ev != nil {
						events = append(events, ev)
					}
					i += consumed
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++

			case 'O':
				if i+2 < len(data) {
					if key := parseSS3(data[i+2]); key != KeyNone {
						events = append(events, KeyEvent{Key: key})
						i += 3
						continue
					}
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++

			default:
				// Alt+key arrives as ESC followed by the key byte.
				if next := data[i+1]; next >= 0x20 && next < 0x7f {
					events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
					i += 2
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
			}
			continue
		}

		if b < 0x20 {
			events = append(events, KeyEvent{Key: controlToKey(b)})
			i++
			continue
		}

		// DEL is backspace on most terminals.
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events
}

// controlToKey maps a control byte (0x00-0x1F) to its key. Backspace, tab,
// and enter take priority over their Ctrl+letter aliases.
func controlToKey(b byte) Key {
	switch b {
	case 0x00:
		return KeyCtrlSpace
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyCtrlA + Key(b-0x01)
	}
	return KeyNone
}

// parseCSI parses one CSI sequence starting at data[0]. Returns the event
// (nil for sequences that parse but carry no key, such as unknown finals)
// and the bytes consumed, or (nil, 0) if the sequence is malformed or
// incomplete.
func parseCSI(data []byte) (Event, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return nil, 0
	}

	var params []int
	current := 0
	hasParam := false
	i := 2

	for i < len(data) {
		b := data[i]

		switch {
		case b >= '0' && b <= '9':
			current = current*10 + int(b-'0')
			hasParam = true
			i++

		case b == ';':
			params = append(params, current)
			current = 0
			hasParam = false
			i++

		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, current)
			}
			return csiEvent(params, b), i + 1

		default:
			return nil, 0
		}
	}

	return nil, 0
}

// csiEvent interprets a complete CSI sequence.
func csiEvent(params []int, final byte) Event {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyEvent{Key: KeyUp, Mod: mod}
	case 'B':
		return KeyEvent{Key: KeyDown, Mod: mod}
	case 'C':
		return KeyEvent{Key: KeyRight, Mod: mod}
	case 'D':
		return KeyEvent{Key: KeyLeft, Mod: mod}
	case 'H':
		return KeyEvent{Key: KeyHome, Mod: mod}
	case 'F':
		return KeyEvent{Key: KeyEnd, Mod: mod}
	case 'Z':
		return KeyEvent{Key: KeyTab, Mod: ModShift}
	case 'I':
		return FocusEvent{Gained: true}
	case 'O':
		return FocusEvent{Gained: false}
	case 'P':
		return KeyEvent{Key: KeyF1, Mod: mod}
	case 'Q':
		return KeyEvent{Key: KeyF2, Mod: mod}
	case 'R':
		return KeyEvent{Key: KeyF3, Mod: mod}
	case 'S':
		return KeyEvent{Key: KeyF4, Mod: mod}
	case 'u':
		// Kitty keyboard protocol: CSI codepoint ; modifier u.
		if len(params) == 0 {
			return nil
		}
		return kittyKey(params[0], mod)
	case '~':
		if len(params) == 0 {
			return nil
		}
		if key, ok := tildeKeys[params[0]]; ok {
			return KeyEvent{Key: key, Mod: mod}
		}
		return nil
	}

	return nil
}

var tildeKeys = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd,
	5: KeyPageUp, 6: KeyPageDown,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

// kittyKey maps a kitty-protocol codepoint to an event. Special keys use
// codepoints in the unicode private use area; the common ones are mapped,
// anything else with a printable codepoint is a rune.
func kittyKey(code int, mod Modifier) Event {
	switch code {
	case 27:
		return KeyEvent{Key: KeyEscape, Mod: mod}
	case 13:
		return KeyEvent{Key: KeyEnter, Mod: mod}
	case 9:
		return KeyEvent{Key: KeyTab, Mod: mod}
	case 127:
		return KeyEvent{Key: KeyBackspace, Mod: mod}
	}
	if code >= 0x20 && code != utf8.RuneError {
		r := rune(code)
		if mod.Has(ModCtrl) && r >= 'a' && r <= 'z' {
			return KeyEvent{Key: KeyCtrlA + Key(r-'a'), Mod: mod &^ ModCtrl}
		}
		return KeyEvent{Key: KeyRune, Rune: r, Mod: mod}
	}
	return nil
}

// parseSS3 maps an SS3 final byte to a key.
func parseSS3(b byte) Key {
	switch b {
	case 'P':
		return KeyF1
	case 'Q':
		return KeyF2
	case 'R':
		return KeyF3
	case 'S':
		return KeyF4
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter:
// 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseMouseSGR parses an SGR-1006 mouse report:
// ESC [ < button ; x ; y M|m. The button field packs the button number,
// modifier bits, a motion bit (32), and a wheel bit (64).
func parseMouseSGR(data []byte) (MouseEvent, int) {
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return MouseEvent{}, 0
	}

	i := 3
	var fields [3]int
	stage := 0

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			fields[stage] = fields[stage]*10 + int(b-'0')
			i++
			continue
		}

		if b == ';' {
			stage++
			if stage > 2 {
				return MouseEvent{}, 0
			}
			i++
			continue
		}

		if b == 'M' || b == 'm' {
			if stage != 2 {
				return MouseEvent{}, 0
			}

			button := fields[0]
			event := MouseEvent{
				// Reports are 1-indexed.
				X: fields[1] - 1,
				Y: fields[2] - 1,
			}

			if button&4 != 0 {
				event.Mod |= ModShift
			}
			if button&8 != 0 {
				event.Mod |= ModAlt
			}
			if button&16 != 0 {
				event.Mod |= ModCtrl
			}

			if button&64 != 0 {
				if button&1 != 0 {
					event.Button = MouseWheelDown
				} else {
					event.Button = MouseWheelUp
				}
				event.Action = MousePress
				return event, i + 1
			}

			switch button & 3 {
			case 0:
				event.Button = MouseLeft
			case 1:
				event.Button = MouseMiddle
			case 2:
				event.Button = MouseRight
			case 3:
				event.Button = MouseNone
			}

			switch {
			case button&32 != 0 && event.Button == MouseNone:
				event.Action = MouseMove
			case button&32 != 0:
				event.Action = MouseDrag
			case b == 'M':
				event.Action = MousePress
			default:
				event.Action = MouseRelease
			}
			return event, i + 1
		}

		return MouseEvent{}, 0
	}

	return MouseEvent{}, 0
}
