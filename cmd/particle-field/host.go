package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/scene"
	"github.com/lixenwraith/particle-field/scroll"
	"github.com/lixenwraith/particle-field/terminal"
)

// errQuit ends the frame loop on user request
var errQuit = errors.New("quit")

// host binds terminal input to a virtual page and drives the scene on the frame goroutine
type host struct {
	screen  *terminal.Screen
	surface *render.TerminalSurface
	page    *scroll.Page
	scene   *scene.Scene
	clock   *engine.PausableClock
	drone   *audio.Drone

	showStatus bool
	// lost is set while the screen has no drawable area
	lost bool
}

func newHost(screen *terminal.Screen, cfg scene.Config, clock *engine.PausableClock, drone *audio.Drone) (*host, error) {
	h := &host{
		screen:     screen,
		surface:    render.NewTerminalSurface(screen),
		page:       scroll.NewPage(parameter.ScrollPageHeight),
		clock:      clock,
		drone:      drone,
		showStatus: true,
	}

	sc, err := scene.Mount(cfg, h.page, h.surface)
	if err != nil {
		return nil, fmt.Errorf("mount scene: %w", err)
	}
	h.scene = sc
	return h, nil
}

// apply handles one translated input command
func (h *host) apply(cmd terminal.Command) error {
	switch cmd.Kind {
	case terminal.CommandScroll:
		h.page.ScrollBy(cmd.Delta)
	case terminal.CommandScrollTop:
		h.page.ScrollTo(0)
	case terminal.CommandScrollBottom:
		h.page.ScrollTo(h.page.Height())
	case terminal.CommandResize:
		h.screen.Sync()
	case terminal.CommandPause:
		paused := h.clock.Toggle()
		log.Printf("pause toggled: %v", paused)
	case terminal.CommandToggleStatus:
		h.showStatus = !h.showStatus
	case terminal.CommandQuit:
		return errQuit
	}
	return nil
}

// frame drains pending commands then advances and redraws once
func (h *host) frame(cmds <-chan terminal.Command) error {
	for {
		select {
		case cmd := <-cmds:
			if err := h.apply(cmd); err != nil {
				return err
			}
		default:
			return h.advance()
		}
	}
}

// advance steps the scene every frame, paused or not; pause only freezes animation time
func (h *host) advance() error {
	if h.lost && h.surfaceReady() {
		log.Printf("surface restored, remounting")
		if err := h.scene.Remount(); err != nil {
			return err
		}
		h.lost = false
	}

	h.updateStatus()

	err := h.scene.Advance(scene.Frame{Elapsed: h.clock.Elapsed()})
	if errors.Is(err, scene.ErrSurfaceLost) {
		if !h.lost {
			log.Printf("surface lost, waiting for resize: %v", err)
			h.lost = true
		}
		return nil
	}
	if err != nil {
		return err
	}

	if h.drone != nil {
		h.drone.SetDistance(h.scene.Snapshot().Camera.Current)
	}
	return nil
}

func (h *host) surfaceReady() bool {
	w, ht := h.screen.Size()
	return w > 0 && ht > 0
}

func (h *host) updateStatus() {
	if !h.showStatus {
		h.surface.SetStatus("")
		return
	}
	snap := h.scene.Snapshot()
	state := "running"
	if h.clock.IsPaused() {
		state = "paused"
	}
	h.surface.SetStatus(fmt.Sprintf(" distance %.2f  target %.2f  scroll %4.0f  points %d  %s  [j/k wheel scroll, space pause, h hide, q quit]",
		snap.Camera.Current, snap.Camera.Target, h.page.Offset(), snap.Count, state))
}
