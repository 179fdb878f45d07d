package field

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/particle-field/parameter"
)

// Palette holds the three point colors in sRGB channel values [0,1]
type Palette struct {
	Green colorful.Color
	Blue  colorful.Color
	Grey  colorful.Color
}

// DefaultPalette parses the configured hex colors
func DefaultPalette() (Palette, error) {
	green, err := colorful.Hex(parameter.FieldColorGreen)
	if err != nil {
		return Palette{}, fmt.Errorf("parse green %q: %w", parameter.FieldColorGreen, err)
	}
	blue, err := colorful.Hex(parameter.FieldColorBlue)
	if err != nil {
		return Palette{}, fmt.Errorf("parse blue %q: %w", parameter.FieldColorBlue, err)
	}
	grey, err := colorful.Hex(parameter.FieldColorGrey)
	if err != nil {
		return Palette{}, fmt.Errorf("parse grey %q: %w", parameter.FieldColorGrey, err)
	}
	return Palette{Green: green, Blue: blue, Grey: grey}, nil
}

// Gradient returns the green→blue blend at t, t=0 is green
// Interpolation is linear on the stored channel values
func (p Palette) Gradient(t float64) colorful.Color {
	return p.Green.BlendRgb(p.Blue, t)
}
