// Package field owns the point cloud: spawn positions, per-point colors, and the per-frame drift rule.
package field

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/particle-field/parameter"
)

var (
	ErrInvalidCount = errors.New("field: point count must be positive")
	ErrNilSource    = errors.New("field: nil random source")
)

// Source supplies uniform samples in [0,1); *rand.Rand satisfies it
type Source interface {
	Float64() float64
}

// Field is a fixed-size point cloud with index-aligned positions and colors
// Buffers are flat with stride 3: point i occupies [i*3, i*3+3)
type Field struct {
	count     int
	positions []float64
	colors    []float64

	// dirty marks positions changed since the last consumer upload
	dirty bool
}

// New allocates and seeds a field of count points
// Positions for every point are drawn before any color
func New(count int, src Source) (*Field, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if src == nil {
		return nil, ErrNilSource
	}

	palette, err := DefaultPalette()
	if err != nil {
		return nil, err
	}

	f := &Field{
		count:     count,
		positions: make([]float64, count*3),
		colors:    make([]float64, count*3),
		dirty:     true,
	}

	for i := range f.positions {
		f.positions[i] = (src.Float64() - 0.5) * parameter.FieldSpread
	}

	for i := 0; i < count; i++ {
		c := palette.Grey
		if src.Float64() >= parameter.FieldGreyChance {
			c = palette.Gradient(src.Float64())
		}
		i3 := i * 3
		f.colors[i3] = c.R
		f.colors[i3+1] = c.G
		f.colors[i3+2] = c.B
	}

	return f, nil
}

// Len returns the point count, fixed for the field's lifetime
func (f *Field) Len() int {
	return f.count
}

// Positions returns the live position buffer, mutated in place by Drift
func (f *Field) Positions() []float64 {
	return f.positions
}

// Colors returns the color buffer; callers must not modify it
func (f *Field) Colors() []float64 {
	return f.colors
}

// Drift applies one frame of displacement at elapsed animation time t (seconds)
// The offset is a pure function of t and the flat component index, so there is no
// re-centering: over long sessions points may wander outside the spawn cube
func (f *Field) Drift(t float64) {
	p := f.positions
	for i := 0; i < f.count; i++ {
		i3 := i * 3
		fi := float64(i3)
		p[i3] += math.Sin(t+fi) * parameter.FieldDriftAmplitude
		p[i3+1] += math.Cos(t+fi+1) * parameter.FieldDriftAmplitude
		p[i3+2] += math.Sin(t+fi+2) * parameter.FieldDriftAmplitude
	}
	f.dirty = true
}

// NeedsUpdate reports whether positions changed since the last Uploaded call
func (f *Field) NeedsUpdate() bool {
	return f.dirty
}

// Uploaded clears the dirty flag after a surface consumed the positions
func (f *Field) Uploaded() {
	f.dirty = false
}

// PointSize returns the world-space point size for the given camera distance
func PointSize(cameraDistance float64) float64 {
	return parameter.PointSizeFactor * cameraDistance
}
