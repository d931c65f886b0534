package core

import "image/color"

// Color is an RGB color with float64 channels in the 0-255 domain.
// Scale and Add are unclamped; callers clamp when a color is finalized.
type Color struct {
	R, G, B float64
}

// Common scene colors
var (
	White  = Color{255, 255, 255}
	Black  = Color{0, 0, 0}
	Red    = Color{255, 0, 0}
	Green  = Color{0, 255, 0}
	Blue   = Color{0, 0, 255}
	Yellow = Color{255, 255, 0}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Scale returns the color with each channel multiplied by f
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Clamp returns the color with each channel clamped to [0, 255]
func (c Color) Clamp() Color {
	clampValue := func(val float64) float64 {
		if val < 0 {
			return 0
		}
		if val > 255 {
			return 255
		}
		return val
	}

	return Color{
		R: clampValue(c.R),
		G: clampValue(c.G),
		B: clampValue(c.B),
	}
}

// RGBA converts the color to an 8-bit RGBA value, clamping each channel
func (c Color) RGBA() color.RGBA {
	clamped := c.Clamp()
	return color.RGBA{
		R: uint8(clamped.R),
		G: uint8(clamped.G),
		B: uint8(clamped.B),
		A: 255,
	}
}
