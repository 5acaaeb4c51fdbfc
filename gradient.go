package tui

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientDirection controls how a gradient is applied across a region.
type GradientDirection int

const (
	// GradientHorizontal runs left to right.
	GradientHorizontal GradientDirection = iota
	// GradientVertical runs top to bottom.
	GradientVertical
	// GradientDiagonalDown runs top-left to bottom-right.
	GradientDiagonalDown
	// GradientDiagonalUp runs bottom-left to top-right.
	GradientDiagonalUp
)

// Gradient is a multi-stop color gradient. Interpolation happens in the
// Luv color space, which avoids the muddy midpoints of naive RGB blending.
type Gradient struct {
	Stops     []Color
	Direction GradientDirection
}

// NewGradient creates a horizontal gradient through the given color stops.
// At least two stops are required for interpolation; fewer yield a
// constant gradient.
func NewGradient(stops ...Color) Gradient {
	return Gradient{Stops: stops, Direction: GradientHorizontal}
}

// WithDirection returns a copy with the given direction.
func (g Gradient) WithDirection(d GradientDirection) Gradient {
	g.Direction = d
	return g
}

// At returns the interpolated color at position t in [0, 1].
func (g Gradient) At(t float64) Color {
	switch len(g.Stops) {
	case 0:
		return DefaultColor()
	case 1:
		return g.Stops[0]
	}

	if t <= 0 {
		return g.Stops[0]
	}
	if t >= 1 {
		return g.Stops[len(g.Stops)-1]
	}

	// Locate the surrounding stop pair.
	segments := float64(len(g.Stops) - 1)
	pos := t * segments
	i := int(pos)
	frac := pos - float64(i)

	c1 := toColorful(g.Stops[i])
	c2 := toColorful(g.Stops[i+1])
	blended := c1.BlendLuv(c2, frac).Clamped()

	r, gr, b := blended.RGB255()
	return RGBColor(r, gr, b)
}

func toColorful(c Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
