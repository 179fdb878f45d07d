package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Loop drives a step function once per frame tick
// Steps run sequentially on the goroutine that called Run
type Loop struct {
	interval time.Duration
	frames   atomic.Uint64
}

// NewLoop creates a loop ticking at fps frames per second; fps <= 0 falls back to 60
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{interval: time.Second / time.Duration(fps)}
}

// Interval returns the frame period
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Frames returns the number of completed steps
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Run calls step on every tick until ctx is done or step returns an error
// Returns nil on context cancellation, otherwise the step error
func (l *Loop) Run(ctx context.Context, step func() error) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := step(); err != nil {
				return err
			}
			l.frames.Add(1)
		}
	}
}
