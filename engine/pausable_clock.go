package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock reports animation time in seconds since the animation started
type Clock interface {
	Elapsed() float64
}

// PausableClock provides pausable animation time with pause duration tracking
// While paused, Elapsed is frozen; resuming continues from the frozen value
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock on the monotonic provider
func NewPausableClock() *PausableClock {
	return NewPausableClockWithProvider(NewMonotonicTimeProvider())
}

// NewPausableClockWithProvider creates a running clock starting at provider's current time
func NewPausableClockWithProvider(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns animation seconds, excluding paused intervals
func (pc *PausableClock) Elapsed() float64 {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.provider.Now()
	if pc.isPaused.Load() {
		end = pc.pauseStartTime
	}
	return (end.Sub(pc.startTime) - pc.totalPausedTime).Seconds()
}

// Pause stops animation time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.provider.Now()
	}
}

// Resume continues animation time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.isPaused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// FixedStepClock advances by a constant step per Tick, for headless runs
type FixedStepClock struct {
	step    float64
	elapsed float64
}

// NewFixedStepClock creates a clock at zero that advances by step on each Tick
func NewFixedStepClock(step time.Duration) *FixedStepClock {
	return &FixedStepClock{step: step.Seconds()}
}

// Tick advances the clock by one step
func (c *FixedStepClock) Tick() {
	c.elapsed += c.step
}

// Elapsed returns the accumulated seconds
func (c *FixedStepClock) Elapsed() float64 {
	return c.elapsed
}
