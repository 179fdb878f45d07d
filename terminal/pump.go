package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// EventSource is the polling half of tcell.Screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump polls src and forwards translated commands to out until src is closed or ctx is done
// PollEvent blocks, so closing the screen is what unblocks the pump after cancellation
func Pump(ctx context.Context, src EventSource, out chan<- Command) error {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return nil
		}
		cmd, ok := Translate(ev)
		if !ok {
			continue
		}
		select {
		case out <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}
