package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/scene"
	"github.com/lixenwraith/particle-field/scroll"
)

// pingpongHalf is the number of frames per scroll direction in the pingpong pattern
const pingpongHalf = 60

type benchOptions struct {
	Count    int
	Frames   int
	Seed     int64
	Scroll   string
	GIF      bool
	GIFEvery int
	Width    int
	Height   int
}

type cameraReport struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	LastScroll float64 `json:"last_scroll"`
}

type boundsReport struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

type report struct {
	Count        int          `json:"count"`
	Frames       int          `json:"frames"`
	Seed         int64        `json:"seed"`
	Scroll       string       `json:"scroll"`
	TotalMs      float64      `json:"total_ms"`
	NsPerFrame   int64        `json:"ns_per_frame"`
	Camera       cameraReport `json:"camera"`
	PointSize    float64      `json:"point_size"`
	Bounds       boundsReport `json:"bounds"`
	GreyFraction float64      `json:"grey_fraction"`
	GIFFrames    int          `json:"gif_frames,omitempty"`
}

// scrollScript returns the scroll offset pushed before each frame, nil for no scrolling
func scrollScript(pattern string, frames int) ([]float64, error) {
	step := parameter.ScrollLineStep
	switch pattern {
	case "none", "":
		return nil, nil
	case "down":
		return lo.Times(frames, func(i int) float64 { return float64(i+1) * step }), nil
	case "up":
		return lo.Times(frames, func(i int) float64 { return float64(frames-i) * step }), nil
	case "pingpong":
		return lo.Times(frames, func(i int) float64 {
			k := (i + 1) % (2 * pingpongHalf)
			if k > pingpongHalf {
				k = 2*pingpongHalf - k
			}
			return float64(k) * step
		}), nil
	}
	return nil, fmt.Errorf("unknown scroll pattern %q", pattern)
}

// sampledSurface forwards every nth frame to the wrapped surface
type sampledSurface struct {
	inner scene.Surface
	every int
	n     int
}

func (s *sampledSurface) Aspect() float64 { return s.inner.Aspect() }

func (s *sampledSurface) Draw(v scene.View) error {
	s.n++
	if (s.n-1)%s.every != 0 {
		return nil
	}
	return s.inner.Draw(v)
}

// runBench steps a headless scene with a fixed clock and reports final state
func runBench(opts benchOptions) (*report, *render.GIFSurface, error) {
	if opts.Frames < 0 {
		return nil, nil, fmt.Errorf("frames must be non-negative, got %d", opts.Frames)
	}
	offsets, err := scrollScript(opts.Scroll, opts.Frames)
	if err != nil {
		return nil, nil, err
	}

	var gs *render.GIFSurface
	var surface scene.Surface
	if opts.GIF {
		gs = render.NewGIFSurface(opts.Width, opts.Height)
		surface = &sampledSurface{inner: gs, every: max(opts.GIFEvery, 1)}
	}

	feed := scroll.NewFeed()
	cfg := scene.Config{Count: opts.Count, Source: rand.New(rand.NewSource(opts.Seed))}
	sc, err := scene.Mount(cfg, feed, surface)
	if err != nil {
		return nil, nil, err
	}
	defer sc.Unmount()

	clock := engine.NewFixedStepClock(parameter.FrameInterval)
	start := time.Now()
	for i := 0; i < opts.Frames; i++ {
		if offsets != nil {
			feed.Push(offsets[i])
		}
		if err := sc.Advance(scene.Frame{Elapsed: clock.Elapsed()}); err != nil {
			return nil, nil, fmt.Errorf("frame %d: %w", i, err)
		}
		clock.Tick()
	}
	total := time.Since(start)

	snap := sc.Snapshot()
	rep := &report{
		Count:   snap.Count,
		Frames:  opts.Frames,
		Seed:    opts.Seed,
		Scroll:  opts.Scroll,
		TotalMs: float64(total.Microseconds()) / 1000,
		Camera: cameraReport{
			Current:    snap.Camera.Current,
			Target:     snap.Camera.Target,
			LastScroll: snap.Camera.LastScroll,
		},
		PointSize:    snap.PointSize,
		Bounds:       positionBounds(sc.Positions()),
		GreyFraction: greyFraction(sc.Colors()),
	}
	if opts.Frames > 0 {
		rep.NsPerFrame = total.Nanoseconds() / int64(opts.Frames)
	}
	if gs != nil {
		rep.GIFFrames = gs.Frames()
	}
	return rep, gs, nil
}

func positionBounds(positions []float64) boundsReport {
	var b boundsReport
	idx := lo.Range(len(positions) / 3)
	if len(idx) == 0 {
		return b
	}
	for axis := 0; axis < 3; axis++ {
		values := lo.Map(idx, func(i int, _ int) float64 { return positions[i*3+axis] })
		b.Min[axis] = lo.Min(values)
		b.Max[axis] = lo.Max(values)
	}
	return b
}

// greyFraction counts points whose three channels are equal
func greyFraction(colors []float64) float64 {
	n := len(colors) / 3
	if n == 0 {
		return 0
	}
	grey := lo.CountBy(lo.Range(n), func(i int) bool {
		i3 := i * 3
		return colors[i3] == colors[i3+1] && colors[i3+1] == colors[i3+2]
	})
	return float64(grey) / float64(n)
}
