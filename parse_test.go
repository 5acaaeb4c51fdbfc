package tui

import (
	"testing"
)

func TestParseInput_PrintableRunes(t *testing.T) {
	events := parseInput([]byte("ab"))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	k, ok := events[0].(KeyEvent)
	if !ok || !k.Is(KeyRune) || k.Rune != 'a' {
		t.Errorf("event 0 = %+v, want rune 'a'", events[0])
	}
}

func TestParseInput_UTF8(t *testing.T) {
	events := parseInput([]byte("世"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if k := events[0].(KeyEvent); k.Rune != '世' {
		t.Errorf("rune = %q, want %q", k.Rune, '世')
	}
}

func TestParseInput_ControlCharacters(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want Key
	}{
		{"ctrl+c", 0x03, KeyCtrlC},
		{"ctrl+space", 0x00, KeyCtrlSpace},
		{"tab", 0x09, KeyTab},
		{"enter", 0x0d, KeyEnter},
		{"backspace", 0x08, KeyBackspace},
		{"del", 0x7f, KeyBackspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := parseInput([]byte{tt.b})
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			if k := events[0].(KeyEvent); k.Key != tt.want {
				t.Errorf("key = %v, want %v", k.Key, tt.want)
			}
		})
	}
}

func TestParseInput_LoneEscape(t *testing.T) {
	events := parseInput([]byte{0x1b})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if k := events[0].(KeyEvent); k.Key != KeyEscape {
		t.Errorf("key = %v, want Escape", k.Key)
	}
}

func TestParseInput_Arrows(t *testing.T) {
	tests := []struct {
		seq  string
		want Key
	}{
		{"\x1b[A", KeyUp},
		{"\x1b[B", KeyDown},
		{"\x1b[C", KeyRight},
		{"\x1b[D", KeyLeft},
	}

	for _, tt := range tests {
		events := parseInput([]byte(tt.seq))
		if len(events) != 1 {
			t.Fatalf("%q: got %d events, want 1", tt.seq, len(events))
		}
		if k := events[0].(KeyEvent); k.Key != tt.want {
			t.Errorf("%q: key = %v, want %v", tt.seq, k.Key, tt.want)
		}
	}
}

func TestParseInput_ModifiedArrow(t *testing.T) {
	// CSI 1;5A is Ctrl+Up.
	events := parseInput([]byte("\x1b[1;5A"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	k := events[0].(KeyEvent)
	if k.Key != KeyUp || !k.Mod.Has(ModCtrl) {
		t.Errorf("event = %+v, want Ctrl+Up", k)
	}
}

func TestParseInput_TildeKeys(t *testing.T) {
	events := parseInput([]byte("\x1b[5~\x1b[3~"))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if k := events[0].(KeyEvent); k.Key != KeyPageUp {
		t.Errorf("event 0 key = %v, want PageUp", k.Key)
	}
	if k := events[1].(KeyEvent); k.Key != KeyDelete {
		t.Errorf("event 1 key = %v, want Delete", k.Key)
	}
}

func TestParseInput_SS3FunctionKeys(t *testing.T) {
	events := parseInput([]byte("\x1bOP"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if k := events[0].(KeyEvent); k.Key != KeyF1 {
		t.Errorf("key = %v, want F1", k.Key)
	}
}

func TestParseInput_AltKey(t *testing.T) {
	events := parseInput([]byte{0x1b, 'x'})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	k := events[0].(KeyEvent)
	if k.Rune != 'x' || !k.Mod.Has(ModAlt) {
		t.Errorf("event = %+v, want Alt+x", k)
	}
}

func TestParseInput_Backtab(t *testing.T) {
	events := parseInput([]byte("\x1b[Z"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	k := events[0].(KeyEvent)
	if k.Key != KeyTab || !k.Mod.Has(ModShift) {
		t.Errorf("event = %+v, want Shift+Tab", k)
	}
}

func TestParseInput_FocusReports(t *testing.T) {
	events := parseInput([]byte("\x1b[I\x1b[O"))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	if f := events[0].(FocusEvent); !f.Gained {
		t.Error("event 0 should be focus gained")
	}
	if f := events[1].(FocusEvent); f.Gained {
		t.Error("event 1 should be focus lost")
	}
}

func TestParseInput_KittyKeys(t *testing.T) {
	// CSI 97;5u is Ctrl+a under the kitty protocol.
	events := parseInput([]byte("\x1b[97;5u"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if k := events[0].(KeyEvent); k.Key != KeyCtrlA {
		t.Errorf("key = %v, want Ctrl+A", k.Key)
	}

	// CSI 27u is a disambiguated escape press.
	events = parseInput([]byte("\x1b[27u"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if k := events[0].(KeyEvent); k.Key != KeyEscape {
		t.Errorf("key = %v, want Escape", k.Key)
	}
}

func TestParseMouseSGR_Press(t *testing.T) {
	events := parseInput([]byte("\x1b[<0;10;5M"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	m := events[0].(MouseEvent)
	if m.Button != MouseLeft || m.Action != MousePress {
		t.Errorf("event = %+v, want left press", m)
	}
	// Reports are 1-indexed; events are 0-indexed.
	if m.X != 9 || m.Y != 4 {
		t.Errorf("position = (%d, %d), want (9, 4)", m.X, m.Y)
	}
}

func TestParseMouseSGR_Release(t *testing.T) {
	events := parseInput([]byte("\x1b[<2;1;1m"))
	m := events[0].(MouseEvent)
	if m.Button != MouseRight || m.Action != MouseRelease {
		t.Errorf("event = %+v, want right release", m)
	}
}

func TestParseMouseSGR_Wheel(t *testing.T) {
	events := parseInput([]byte("\x1b[<64;3;3M\x1b[<65;3;3M"))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if m := events[0].(MouseEvent); m.Button != MouseWheelUp {
		t.Errorf("event 0 = %+v, want wheel up", m)
	}
	if m := events[1].(MouseEvent); m.Button != MouseWheelDown {
		t.Errorf("event 1 = %+v, want wheel down", m)
	}
}

func TestParseMouseSGR_Drag(t *testing.T) {
	events := parseInput([]byte("\x1b[<32;5;5M"))
	m := events[0].(MouseEvent)
	if m.Button != MouseLeft || m.Action != MouseDrag {
		t.Errorf("event = %+v, want left drag", m)
	}
}

func TestParseMouseSGR_Motion(t *testing.T) {
	// Button 35 is motion with no button held.
	events := parseInput([]byte("\x1b[<35;8;2M"))
	m := events[0].(MouseEvent)
	if m.Button != MouseNone || m.Action != MouseMove {
		t.Errorf("event = %+v, want bare motion", m)
	}
	if m.Pos() != V(7, 1) {
		t.Errorf("position = %v, want %v", m.Pos(), V(7, 1))
	}
}

func TestParseMouseSGR_Modifiers(t *testing.T) {
	// Button 0 with ctrl bit (16).
	events := parseInput([]byte("\x1b[<16;1;1M"))
	m := events[0].(MouseEvent)
	if !m.Mod.Has(ModCtrl) {
		t.Errorf("mod = %v, want Ctrl", m.Mod)
	}
}

func TestParseInput_MixedSequence(t *testing.T) {
	events := parseInput([]byte("a\x1b[Ab"))
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if k := events[1].(KeyEvent); k.Key != KeyUp {
		t.Errorf("middle event = %+v, want Up", k)
	}
}
