package tui

import (
	"os"
	"strings"
)

// DetectCapabilities inspects the environment and returns the terminal's
// capabilities, with conservative defaults when nothing is recognizable.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Colors:    Color16,
		Unicode:   true,
		TrueColor: false,
		AltScreen: true,
	}

	// Explicit true color indicators win over TERM heuristics.
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.Colors = ColorTrue
		caps.TrueColor = true
	}

	// Emulators known to support true color.
	for _, env := range []string{
		"WT_SESSION",       // Windows Terminal
		"ITERM_SESSION_ID", // iTerm2
		"KITTY_WINDOW_ID",  // kitty
		"KONSOLE_VERSION",  // Konsole
		"VTE_VERSION",      // GNOME Terminal, Tilix, other VTE
	} {
		if os.Getenv(env) != "" {
			caps.Colors = ColorTrue
			caps.TrueColor = true
			break
		}
	}

	// kitty and foot implement the kitty keyboard protocol; ghostty and
	// wezterm advertise via TERM_PROGRAM.
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		caps.Kitty = true
	}
	switch strings.ToLower(os.Getenv("TERM_PROGRAM")) {
	case "wezterm", "ghostty":
		caps.Kitty = true
		caps.Colors = ColorTrue
		caps.TrueColor = true
	}

	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case term == "dumb":
		return Capabilities{Colors: ColorNone}
	case strings.Contains(term, "kitty") || strings.Contains(term, "foot"):
		caps.Kitty = true
		caps.Colors = ColorTrue
		caps.TrueColor = true
	case strings.Contains(term, "truecolor"):
		caps.Colors = ColorTrue
		caps.TrueColor = true
	case strings.Contains(term, "256color") && !caps.TrueColor:
		caps.Colors = Color256
	}

	return caps
}

// SupportsColor reports whether the terminal can display the given color.
func (c Capabilities) SupportsColor(color Color) bool {
	switch color.Type() {
	case ColorDefault:
		return true
	case ColorANSI:
		return c.Colors >= Color16
	case ColorRGB:
		return c.TrueColor
	}
	return false
}

// EffectiveColor returns the color as the terminal will show it: the
// original when supported, an ANSI approximation otherwise, or the default
// on monochrome terminals.
func (c Capabilities) EffectiveColor(color Color) Color {
	if c.SupportsColor(color) {
		return color
	}

	switch color.Type() {
	case ColorRGB:
		if c.Colors >= Color16 {
			return color.ToANSI()
		}
		return DefaultColor()
	case ColorANSI:
		if c.Colors < Color16 {
			return DefaultColor()
		}
	}
	return color
}

// String returns a short description of the capabilities.
func (c Capabilities) String() string {
	var parts []string

	switch c.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}

	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}
	if c.AltScreen {
		parts = append(parts, "altscreen")
	}
	if c.Kitty {
		parts = append(parts, "kitty-keys")
	}

	return strings.Join(parts, ", ")
}
