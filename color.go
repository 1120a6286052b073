package ndscene

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// clamp255 clamps a value to the [0, 255] range.
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ColorScheme groups the three colors a scene is drawn with.
type ColorScheme struct {
	Background RGBA
	Wireframe  RGBA
	Surface    RGBA
}

// DefaultColorScheme returns the scheme a fresh State starts with:
// a muted blue background, opaque white wireframe and a faint white surface.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Background: RGBA{R: 0.45, G: 0.45, B: 0.65, A: 1},
		Wireframe:  RGBA{R: 1, G: 1, B: 1, A: 1},
		Surface:    RGBA{R: 1, G: 1, B: 1, A: 0.1},
	}
}
