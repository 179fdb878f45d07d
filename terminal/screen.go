package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen owns a tcell screen for the lifetime of a host
type Screen struct {
	tcell.Screen
	closeOnce sync.Once
}

// Open creates, initializes and configures the real terminal screen
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Wrap(s)
}

// Wrap initializes an existing tcell screen, e.g. a simulation screen in tests
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse()
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	s.Clear()
	return &Screen{Screen: s}, nil
}

// Close restores the terminal; safe to call multiple times and from any goroutine
// A blocked PollEvent returns nil once the screen is closed
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		s.DisableMouse()
		s.Fini()
	})
}
