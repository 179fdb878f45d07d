// Package audio plays an optional ambient drone whose pitch follows the camera zoom.
package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/samber/lo"

	"github.com/lixenwraith/particle-field/parameter"
)

// Drone is an endless sine streamer retuned from the frame goroutine
// Pitch changes glide per sample so retunes never click
type Drone struct {
	cfg  *Config
	rate beep.SampleRate

	target atomic.Uint64 // float64 bits of target frequency, written by SetDistance

	// Owned by the speaker goroutine
	freq  float64
	phase float64

	mu      sync.Mutex
	ctrl    *beep.Ctrl
	started bool
}

// NewDrone creates a drone tuned for the initial camera distance
func NewDrone(cfg *Config) *Drone {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	d := &Drone{
		cfg:  cfg,
		rate: beep.SampleRate(cfg.SampleRate),
	}
	d.SetDistance(parameter.CameraInitialDistance)
	d.freq = d.Target()
	return d
}

// FrequencyFor maps camera distance to pitch: farthest zoom is the base, closest adds the full span
func FrequencyFor(distance float64) float64 {
	span := parameter.CameraMaxDistance - parameter.CameraMinDistance
	closeness := lo.Clamp((parameter.CameraMaxDistance-distance)/span, 0, 1)
	return parameter.AudioDroneBaseFreq + closeness*parameter.AudioDroneFreqSpan
}

// SetDistance retunes the drone; safe to call from any goroutine
func (d *Drone) SetDistance(distance float64) {
	d.target.Store(math.Float64bits(FrequencyFor(distance)))
}

// Target returns the frequency the drone is gliding toward
func (d *Drone) Target() float64 {
	return math.Float64frombits(d.target.Load())
}

// Stream implements beep.Streamer
func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	target := d.Target()
	for i := range samples {
		d.freq += (target - d.freq) * parameter.AudioDroneGlide

		val := math.Sin(2 * math.Pi * d.phase)
		samples[i][0] = val
		samples[i][1] = val

		d.phase += d.freq / float64(d.rate)
		d.phase -= math.Floor(d.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (d *Drone) Err() error { return nil }

// Start opens the speaker and begins playback; no-op when disabled or already started
func (d *Drone) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.cfg.Enabled || d.started {
		return nil
	}

	if err := speaker.Init(d.rate, d.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	d.ctrl = &beep.Ctrl{Streamer: newVolume(d, d.cfg.Volume), Paused: false}
	speaker.Play(d.ctrl)
	d.started = true
	return nil
}

// Stop silences playback and detaches from the speaker
func (d *Drone) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started {
		return
	}
	speaker.Lock()
	d.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	d.started = false
}

// Running reports whether the drone is attached to the speaker
func (d *Drone) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started
}

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so 0 volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
