package tui

import (
	"testing"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    Color
		wantErr bool
	}{
		{"six digits", "#ff8000", RGBColor(255, 128, 0), false},
		{"three digits", "#f80", RGBColor(255, 136, 0), false},
		{"no hash", "ff8000", RGBColor(255, 128, 0), false},
		{"uppercase", "#FF8000", RGBColor(255, 128, 0), false},
		{"bad length", "#ff80", Color{}, true},
		{"bad digit", "#ffxx00", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexColor(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexColor(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("HexColor(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColor_ZeroValueIsDefault(t *testing.T) {
	var c Color
	if !c.IsDefault() {
		t.Error("zero Color is not default")
	}
}

func TestColor_ToANSI(t *testing.T) {
	// Pure red maps into the color cube, not the gray ramp.
	idx := RGBColor(255, 0, 0).ToANSI().ANSI()
	if idx < 16 || idx > 231 {
		t.Errorf("red mapped to %d, want a cube entry", idx)
	}

	// Mid gray maps to the grayscale ramp.
	idx = RGBColor(128, 128, 128).ToANSI().ANSI()
	if idx < 232 {
		t.Errorf("gray mapped to %d, want the gray ramp", idx)
	}

	// ANSI and default colors pass through.
	if got := Red.ToANSI(); !got.Equal(Red) {
		t.Errorf("ANSI color changed: %v", got)
	}
	if got := DefaultColor().ToANSI(); !got.IsDefault() {
		t.Errorf("default color changed: %v", got)
	}
}

func TestColor_RGB_ExpandsPalette(t *testing.T) {
	// Cube entry 16 is black, 231 is white.
	r, g, b := ANSIColor(16).RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("entry 16 = (%d,%d,%d), want black", r, g, b)
	}
	r, g, b = ANSIColor(231).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("entry 231 = (%d,%d,%d), want white", r, g, b)
	}
}

func TestGradient_At(t *testing.T) {
	g := NewGradient(RGBColor(0, 0, 0), RGBColor(255, 255, 255))

	if got := g.At(0); !got.Equal(RGBColor(0, 0, 0)) {
		t.Errorf("At(0) = %v, want first stop", got)
	}
	if got := g.At(1); !got.Equal(RGBColor(255, 255, 255)) {
		t.Errorf("At(1) = %v, want last stop", got)
	}

	// Out-of-range positions clamp to the endpoints.
	if got := g.At(-0.5); !got.Equal(RGBColor(0, 0, 0)) {
		t.Errorf("At(-0.5) = %v, want first stop", got)
	}
	if got := g.At(1.5); !got.Equal(RGBColor(255, 255, 255)) {
		t.Errorf("At(1.5) = %v, want last stop", got)
	}
}

func TestGradient_Degenerate(t *testing.T) {
	if got := NewGradient().At(0.5); !got.IsDefault() {
		t.Errorf("empty gradient At = %v, want default", got)
	}
	single := NewGradient(Red)
	if got := single.At(0.9); !got.Equal(Red) {
		t.Errorf("single stop At = %v, want the stop", got)
	}
}

func TestGradient_MultiStop(t *testing.T) {
	g := NewGradient(RGBColor(255, 0, 0), RGBColor(0, 255, 0), RGBColor(0, 0, 255))

	// Half way lands exactly on the middle stop.
	if got := g.At(0.5); !got.Equal(RGBColor(0, 255, 0)) {
		t.Errorf("At(0.5) = %v, want the middle stop", got)
	}
}
