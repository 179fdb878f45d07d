// Package camera eases a perspective camera's distance toward a zoom target nudged by scroll direction.
package camera

import (
	"github.com/samber/lo"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/scroll"
	"github.com/lixenwraith/particle-field/vmath"
)

// State is the controller's mutable scalars
// Target is always within [CameraMinDistance, CameraMaxDistance]; Current is not clamped
type State struct {
	Current    float64
	Target     float64
	LastScroll float64
}

// Controller owns camera state for one mounted scene
// Not safe for concurrent use: scroll handling and Advance must run on the frame goroutine
type Controller struct {
	state State
	proj  Projection
}

// New creates a controller at the initial distance with a matching target
func New() *Controller {
	return &Controller{
		state: State{
			Current:    parameter.CameraInitialDistance,
			Target:     parameter.CameraInitialDistance,
			LastScroll: 0,
		},
		proj: NewProjection(parameter.CameraInitialDistance),
	}
}

// Attach subscribes the controller to src and returns the release func
func (c *Controller) Attach(src scroll.Source) func() {
	return src.Subscribe(c.HandleScroll)
}

// HandleScroll steps the target by a fixed amount per event
// An offset equal to the previous one counts as scrolling up
func (c *Controller) HandleScroll(offset float64) {
	if offset > c.state.LastScroll {
		c.state.Target = lo.Clamp(c.state.Target-parameter.CameraScrollStep, parameter.CameraMinDistance, parameter.CameraMaxDistance)
	} else {
		c.state.Target = lo.Clamp(c.state.Target+parameter.CameraScrollStep, parameter.CameraMinDistance, parameter.CameraMaxDistance)
	}
	c.state.LastScroll = offset
}

// Advance runs one frame of easing and refreshes the projection
func (c *Controller) Advance() {
	c.state.Current = vmath.Approach(c.state.Current, c.state.Target, parameter.CameraEasing)
	c.proj.Update(c.state.Current)
}

// SetAspect updates the viewport aspect ratio used by the projection
func (c *Controller) SetAspect(aspect float64) {
	if aspect > 0 {
		c.proj.Aspect = aspect
	}
}

// State returns a copy of the current scalars
func (c *Controller) State() State {
	return c.state
}

// Distance returns the live camera distance
func (c *Controller) Distance() float64 {
	return c.state.Current
}

// Projection returns a copy of the current projection
func (c *Controller) Projection() Projection {
	return c.proj
}

// SetState overrides the scalars, used to seed a controller from a known configuration
// Target is clamped to the zoom range
func (c *Controller) SetState(s State) {
	s.Target = lo.Clamp(s.Target, parameter.CameraMinDistance, parameter.CameraMaxDistance)
	c.state = s
	c.proj.Update(s.Current)
}
