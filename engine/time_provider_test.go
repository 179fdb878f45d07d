package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	expected := newTime.Add(1 * time.Hour)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}
}

func TestPausableClock_Elapsed(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClockWithProvider(mock)

	if got := clock.Elapsed(); got != 0 {
		t.Errorf("Expected 0 at start, got %v", got)
	}

	mock.Advance(1500 * time.Millisecond)
	if got := clock.Elapsed(); got != 1.5 {
		t.Errorf("Expected 1.5s, got %v", got)
	}
}

func TestPausableClock_PauseFreezes(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClockWithProvider(mock)

	mock.Advance(2 * time.Second)
	clock.Pause()
	mock.Advance(5 * time.Second)

	if got := clock.Elapsed(); got != 2 {
		t.Errorf("Expected frozen 2s while paused, got %v", got)
	}
	if got := clock.GetTotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s pause duration, got %v", got)
	}

	clock.Resume()
	mock.Advance(1 * time.Second)
	if got := clock.Elapsed(); got != 3 {
		t.Errorf("Expected 3s after resume, got %v", got)
	}
}

func TestPausableClock_Toggle(t *testing.T) {
	clock := NewPausableClockWithProvider(NewMockTimeProvider(time.Unix(0, 0)))

	if !clock.Toggle() || !clock.IsPaused() {
		t.Error("Expected first toggle to pause")
	}
	if clock.Toggle() || clock.IsPaused() {
		t.Error("Expected second toggle to resume")
	}
}

func TestFixedStepClock(t *testing.T) {
	clock := NewFixedStepClock(250 * time.Millisecond)
	for i := 0; i < 4; i++ {
		clock.Tick()
	}
	if got := clock.Elapsed(); got != 1 {
		t.Errorf("Expected 1s after 4 ticks, got %v", got)
	}
}
