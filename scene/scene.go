// Package scene mounts a particle field and a scroll-reactive camera and advances both once per frame.
package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/particle-field/camera"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/scroll"
)

var (
	ErrUnmounted   = errors.New("scene: not mounted")
	ErrNilScroll   = errors.New("scene: nil scroll source")
	ErrSurfaceLost = errors.New("scene: display surface lost")
)

// Config holds mount-time construction parameters
type Config struct {
	Count  int
	Source field.Source
}

// DefaultConfig returns the default point count with a time-seeded source
func DefaultConfig() Config {
	return Config{
		Count:  parameter.FieldDefaultCount,
		Source: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Frame is the per-frame context supplied by the rendering host
type Frame struct {
	// Elapsed is monotonic animation time in seconds since the animation started
	Elapsed float64
}

// View is what a surface needs to draw one frame
// Slices alias the live field buffers and are only valid during Draw
type View struct {
	Positions  []float64
	Colors     []float64
	PointSize  float64
	Projection camera.Projection
	Dirty      bool
}

// Len returns the number of points in the view
func (v View) Len() int {
	return len(v.Positions) / 3
}

// Surface is a display target the scene redraws into every frame
type Surface interface {
	// Aspect returns the viewport width/height in square units
	Aspect() float64
	// Draw renders one frame; return an error wrapping ErrSurfaceLost if the display is gone
	Draw(v View) error
}

// Snapshot is a read-only summary of scene state
type Snapshot struct {
	Camera    camera.State
	Count     int
	PointSize float64
	Frames    uint64
}

// Scene owns the point cloud and camera for one mount
// All methods must be called from the frame goroutine, the same one that delivers scroll events
type Scene struct {
	cfg     Config
	scroll  scroll.Source
	surface Surface

	field     *field.Field
	camera    *camera.Controller
	release   func()
	pointSize float64
	frames    uint64
	mounted   bool
}

// Mount builds fresh state and subscribes the camera to src
// surface may be nil for headless stepping
func Mount(cfg Config, src scroll.Source, surface Surface) (*Scene, error) {
	if src == nil {
		return nil, ErrNilScroll
	}
	s := &Scene{
		cfg:     cfg,
		scroll:  src,
		surface: surface,
	}
	if err := s.mount(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) mount() error {
	f, err := field.New(s.cfg.Count, s.cfg.Source)
	if err != nil {
		return fmt.Errorf("mount field: %w", err)
	}
	c := camera.New()

	s.field = f
	s.camera = c
	s.pointSize = field.PointSize(c.Distance())
	s.frames = 0
	s.release = c.Attach(s.scroll)
	s.mounted = true
	return nil
}

// Advance runs one frame: camera easing, field drift, point size refresh, redraw
func (s *Scene) Advance(fr Frame) error {
	if !s.mounted {
		return ErrUnmounted
	}

	if s.surface != nil {
		s.camera.SetAspect(s.surface.Aspect())
	}
	s.camera.Advance()
	s.field.Drift(fr.Elapsed)
	s.pointSize = field.PointSize(s.camera.Distance())
	s.frames++

	if s.surface == nil {
		return nil
	}
	if err := s.surface.Draw(s.View()); err != nil {
		return fmt.Errorf("draw frame %d: %w", s.frames, err)
	}
	s.field.Uploaded()
	return nil
}

// View exposes the current frame's buffers and projection
func (s *Scene) View() View {
	return View{
		Positions:  s.field.Positions(),
		Colors:     s.field.Colors(),
		PointSize:  s.pointSize,
		Projection: s.camera.Projection(),
		Dirty:      s.field.NeedsUpdate(),
	}
}

// Unmount releases the scroll subscription; safe to call more than once
func (s *Scene) Unmount() {
	if !s.mounted {
		return
	}
	s.release()
	s.release = nil
	s.mounted = false
}

// Remount discards all state and mounts again with freshly drawn positions and colors
func (s *Scene) Remount() error {
	s.Unmount()
	s.field = nil
	s.camera = nil
	return s.mount()
}

// Snapshot summarizes the scene for status lines and reports
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		PointSize: s.pointSize,
		Frames:    s.frames,
	}
	if s.camera != nil {
		snap.Camera = s.camera.State()
	}
	if s.field != nil {
		snap.Count = s.field.Len()
	}
	return snap
}

// Positions returns the live position buffer
func (s *Scene) Positions() []float64 {
	if s.field == nil {
		return nil
	}
	return s.field.Positions()
}

// Colors returns the color buffer
func (s *Scene) Colors() []float64 {
	if s.field == nil {
		return nil
	}
	return s.field.Colors()
}
