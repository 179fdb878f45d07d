package camera

import (
	"math"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Projection is a perspective camera on the +Z axis looking at the origin
type Projection struct {
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Aspect float64 // width / height of the viewport in square units

	distance float64
	focal    float64 // 1 / tan(fov/2)
}

// NewProjection creates a projection at the given distance with unit aspect
func NewProjection(distance float64) Projection {
	p := Projection{
		FOV:    parameter.CameraFOV,
		Near:   parameter.CameraNear,
		Far:    parameter.CameraFar,
		Aspect: 1,
	}
	p.Update(distance)
	return p
}

// Update recomputes derived terms for a new camera distance
func (p *Projection) Update(distance float64) {
	p.distance = distance
	p.focal = 1.0 / math.Tan(vmath.DegToRad(p.FOV)/2)
}

// Distance returns the camera distance the projection was last updated with
func (p Projection) Distance() float64 {
	return p.distance
}

// Project maps a world point to normalized device coordinates
// ndcX/ndcY are in [-1,1] when on screen; depth is the distance in front of the camera
// ok is false for points outside the near/far range
func (p Projection) Project(v vmath.Vec3F) (ndcX, ndcY, depth float64, ok bool) {
	rel := vmath.V3FSub(v, vmath.Vec3F{Z: p.distance})
	depth = -rel.Z
	if depth < p.Near || depth > p.Far {
		return 0, 0, depth, false
	}
	aspect := p.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	ndcX = rel.X * p.focal / (aspect * depth)
	ndcY = rel.Y * p.focal / depth
	return ndcX, ndcY, depth, true
}
