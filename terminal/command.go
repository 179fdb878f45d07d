package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/parameter"
)

// CommandKind enumerates host actions derived from terminal input
type CommandKind uint8

const (
	CommandNone CommandKind = iota
	CommandScroll
	CommandScrollTop
	CommandScrollBottom
	CommandResize
	CommandPause
	CommandToggleStatus
	CommandQuit
)

// Command is a translated input event
type Command struct {
	Kind CommandKind
	// Delta is the scroll offset change for CommandScroll, positive is down
	Delta float64
	// Width, Height are set for CommandResize
	Width, Height int
}

// Translate maps a tcell event to a host command; ok is false for ignored events
func Translate(ev tcell.Event) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		btn := ev.Buttons()
		switch {
		case btn&tcell.WheelDown != 0:
			return Command{Kind: CommandScroll, Delta: parameter.ScrollLineStep}, true
		case btn&tcell.WheelUp != 0:
			return Command{Kind: CommandScroll, Delta: -parameter.ScrollLineStep}, true
		}
		return Command{}, false

	case *tcell.EventResize:
		w, h := ev.Size()
		return Command{Kind: CommandResize, Width: w, Height: h}, true

	case *tcell.EventKey:
		return translateKey(ev)
	}
	return Command{}, false
}

func translateKey(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyDown:
		return Command{Kind: CommandScroll, Delta: parameter.ScrollLineStep}, true
	case tcell.KeyUp:
		return Command{Kind: CommandScroll, Delta: -parameter.ScrollLineStep}, true
	case tcell.KeyPgDn:
		return Command{Kind: CommandScroll, Delta: parameter.ScrollPageStep}, true
	case tcell.KeyPgUp:
		return Command{Kind: CommandScroll, Delta: -parameter.ScrollPageStep}, true
	case tcell.KeyHome:
		return Command{Kind: CommandScrollTop}, true
	case tcell.KeyEnd:
		return Command{Kind: CommandScrollBottom}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CommandQuit}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			return Command{Kind: CommandScroll, Delta: parameter.ScrollLineStep}, true
		case 'k':
			return Command{Kind: CommandScroll, Delta: -parameter.ScrollLineStep}, true
		case 'g':
			return Command{Kind: CommandScrollTop}, true
		case 'G':
			return Command{Kind: CommandScrollBottom}, true
		case ' ':
			return Command{Kind: CommandPause}, true
		case 'h':
			return Command{Kind: CommandToggleStatus}, true
		case 'q':
			return Command{Kind: CommandQuit}, true
		}
	}
	return Command{}, false
}
