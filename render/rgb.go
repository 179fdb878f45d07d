package render

import "math"

// RGB is an 8-bit per channel display color
type RGB struct {
	R, G, B uint8
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// FromUnit converts [0,1] channel values to RGB, saturating out-of-range input
func FromUnit(r, g, b float64) RGB {
	return RGB{
		R: clamp(r*255.0 + 0.5),
		G: clamp(g*255.0 + 0.5),
		B: clamp(b*255.0 + 0.5),
	}
}

// Scale multiplies all channels by factor (0.0-1.0)
func Scale(c RGB, factor float64) RGB {
	// Clamp to not wrap on factor > 1.0
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Peak returns the brightest channel of unit channel values
func Peak(r, g, b float64) float64 {
	return math.Max(r, math.Max(g, b))
}
