package render

import (
	"math"

	"github.com/lixenwraith/particle-field/scene"
	"github.com/lixenwraith/particle-field/vmath"
)

// Splat projects every point of v into acc and adds its color weighted by projected size
// Size attenuation follows a perspective point sprite: pixels = size * (height/2) / depth
// Returns the number of points that landed inside the buffer
func Splat(acc *Accumulator, v scene.View, gain float64) int {
	w, h := float64(acc.width), float64(acc.height)
	if w == 0 || h == 0 {
		return 0
	}
	halfH := h / 2

	drawn := 0
	n := v.Len()
	for i := 0; i < n; i++ {
		ndcX, ndcY, depth, ok := v.Projection.Project(vmath.V3FAt(v.Positions, i))
		if !ok {
			continue
		}

		x := int(math.Floor((ndcX + 1) / 2 * w))
		y := int(math.Floor((1 - ndcY) / 2 * h))

		weight := v.PointSize * halfH / depth * gain
		i3 := i * 3
		if acc.Add(x, y, v.Colors[i3]*weight, v.Colors[i3+1]*weight, v.Colors[i3+2]*weight) {
			drawn++
		}
	}
	return drawn
}
