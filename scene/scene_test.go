package scene

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/scroll"
)

type recordingSurface struct {
	draws   int
	last    View
	aspect  float64
	failErr error
}

func (r *recordingSurface) Aspect() float64 { return r.aspect }

func (r *recordingSurface) Draw(v View) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.draws++
	r.last = v
	return nil
}

func testConfig(count int, seed int64) Config {
	return Config{Count: count, Source: rand.New(rand.NewSource(seed))}
}

func TestMount_Errors(t *testing.T) {
	if _, err := Mount(testConfig(10, 1), nil, nil); !errors.Is(err, ErrNilScroll) {
		t.Errorf("nil scroll error = %v, want %v", err, ErrNilScroll)
	}

	feed := scroll.NewFeed()
	sc, err := Mount(testConfig(0, 1), feed, nil)
	if !errors.Is(err, field.ErrInvalidCount) {
		t.Errorf("zero count error = %v, want %v", err, field.ErrInvalidCount)
	}
	if sc != nil {
		t.Error("Expected nil scene on failed mount")
	}
	if feed.Len() != 0 {
		t.Errorf("failed mount left %d subscriptions", feed.Len())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Count != 4000 {
		t.Errorf("Count = %d, want 4000", cfg.Count)
	}
	if cfg.Source == nil {
		t.Error("Expected non-nil source")
	}
}

func TestAdvance_DrawsEveryFrame(t *testing.T) {
	feed := scroll.NewFeed()
	surf := &recordingSurface{aspect: 1.5}
	sc, err := Mount(testConfig(50, 2), feed, surf)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer sc.Unmount()

	for i := 0; i < 10; i++ {
		if err := sc.Advance(Frame{Elapsed: float64(i) / 60}); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if surf.draws != 10 {
		t.Errorf("draws = %d, want 10", surf.draws)
	}
	if surf.last.Len() != 50 {
		t.Errorf("view Len = %d, want 50", surf.last.Len())
	}
	if !surf.last.Dirty {
		t.Error("Expected drawn view to carry dirty positions")
	}
	if surf.last.Projection.Aspect != 1.5 {
		t.Errorf("projection aspect = %v, want 1.5", surf.last.Projection.Aspect)
	}
	if sc.Snapshot().Frames != 10 {
		t.Errorf("Frames = %d, want 10", sc.Snapshot().Frames)
	}
}

func TestAdvance_ScrollDrivesZoomAndPointSize(t *testing.T) {
	feed := scroll.NewFeed()
	sc, err := Mount(testConfig(10, 3), feed, nil)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer sc.Unmount()

	for i := 1; i <= 200; i++ {
		feed.Push(float64(i) * 10)
	}
	if got := sc.Snapshot().Camera.Target; got != 6 {
		t.Fatalf("Target = %v, want 6", got)
	}

	for i := 0; i < 400; i++ {
		if err := sc.Advance(Frame{Elapsed: float64(i) / 60}); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	snap := sc.Snapshot()
	if math.Abs(snap.Camera.Current-6) > 1e-3 {
		t.Errorf("Current = %v, want ~6", snap.Camera.Current)
	}
	if want := 0.002 * snap.Camera.Current; math.Abs(snap.PointSize-want) > 1e-15 {
		t.Errorf("PointSize = %v, want %v", snap.PointSize, want)
	}
}

func TestUnmount_ReleasesScroll(t *testing.T) {
	feed := scroll.NewFeed()
	sc, _ := Mount(testConfig(10, 4), feed, nil)
	if feed.Len() != 1 {
		t.Fatalf("Expected 1 subscription, got %d", feed.Len())
	}

	sc.Unmount()
	sc.Unmount()

	if feed.Len() != 0 {
		t.Errorf("Expected 0 subscriptions after unmount, got %d", feed.Len())
	}
	feed.Push(1000)
	if got := sc.Snapshot().Camera.Target; got != 10 {
		t.Errorf("Target moved after unmount: %v", got)
	}
	if err := sc.Advance(Frame{}); !errors.Is(err, ErrUnmounted) {
		t.Errorf("Advance after unmount = %v, want %v", err, ErrUnmounted)
	}
}

func TestAdvance_SurfaceLostThenRemount(t *testing.T) {
	feed := scroll.NewFeed()
	surf := &recordingSurface{aspect: 1, failErr: ErrSurfaceLost}
	sc, _ := Mount(testConfig(20, 5), feed, surf)
	defer sc.Unmount()

	before := append([]float64(nil), sc.Positions()...)
	feed.Push(10)

	err := sc.Advance(Frame{Elapsed: 0.1})
	if !errors.Is(err, ErrSurfaceLost) {
		t.Fatalf("Advance error = %v, want %v", err, ErrSurfaceLost)
	}

	if err := sc.Remount(); err != nil {
		t.Fatalf("Remount: %v", err)
	}
	if feed.Len() != 1 {
		t.Errorf("Expected exactly 1 subscription after remount, got %d", feed.Len())
	}

	snap := sc.Snapshot()
	if snap.Camera.Current != 10 || snap.Camera.Target != 10 || snap.Frames != 0 {
		t.Errorf("remount did not reset camera/frames: %+v", snap)
	}

	same := true
	for i, v := range sc.Positions() {
		if v != before[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected fresh random positions after remount")
	}

	surf.failErr = nil
	if err := sc.Advance(Frame{Elapsed: 0.2}); err != nil {
		t.Errorf("Advance after remount: %v", err)
	}
}
