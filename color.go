package tui

import (
	"errors"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color with support for default, ANSI 256,
// and true color. The zero value is the terminal default.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255).
	// For RGB: r, g, b hold the color components.
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// Basic ANSI palette entries.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// HexColor parses a hex color string into an RGB Color.
// Supported formats: "#RRGGBB" and "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		r, err := parseHexByte(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexByte(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexByte(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r, g, b), nil
	case 3:
		r, err := parseHexNibble(hex[0])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexNibble(hex[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexNibble(hex[2])
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r<<4|r, g<<4|g, b<<4|b), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB or #RRGGBB")
	}
}

func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

func parseHexNibble(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// Type returns the color representation kind.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index for an ANSI color. Zero for other types.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		return 0
	}
	return c.r
}

// RGB returns the components of an RGB color. For ANSI colors the palette
// entry is expanded; the default color maps to black.
func (c Color) RGB() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		return ansiPaletteRGB(c.r)
	default:
		return 0, 0, 0
	}
}

// Equal reports whether both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// ToANSI approximates the color as an ANSI 256 palette entry.
// ANSI and default colors are returned unchanged.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}
	return ANSIColor(rgbToANSIIndex(c.r, c.g, c.b))
}

// rgbToANSIIndex maps RGB to the nearest entry of the 256 palette,
// using the 6x6x6 cube for chromatic colors and the grayscale ramp
// when the channels are close.
func rgbToANSIIndex(r, g, b uint8) uint8 {
	// Grayscale ramp (232-255) when the color is near-neutral.
	maxC := max(r, max(g, b))
	minC := min(r, min(g, b))
	if int(maxC)-int(minC) < 16 {
		gray := (int(r) + int(g) + int(b)) / 3
		if gray < 4 {
			return 16 // cube black
		}
		if gray > 247 {
			return 231 // cube white
		}
		return uint8(232 + (gray-8)*24/240)
	}

	// 6x6x6 color cube (16-231).
	ri := cubeIndex(r)
	gi := cubeIndex(g)
	bi := cubeIndex(b)
	return uint8(16 + 36*ri + 6*gi + bi)
}

// cubeIndex maps a channel value to its 0-5 cube level.
// Cube levels are 0, 95, 135, 175, 215, 255.
func cubeIndex(v uint8) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return int(v-35) / 40
}

// ansiPaletteRGB expands an ANSI 256 index into RGB components.
func ansiPaletteRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		c := basicPalette[index]
		return c[0], c[1], c[2]
	case index < 232:
		// 6x6x6 cube
		i := int(index) - 16
		levels := [6]uint8{0, 95, 135, 175, 215, 255}
		return levels[i/36], levels[i/6%6], levels[i%6]
	default:
		// Grayscale ramp
		gray := uint8(8 + (int(index)-232)*10)
		return gray, gray, gray
	}
}

// basicPalette holds the conventional RGB values of the 16 base colors.
var basicPalette = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}
