package terminal

import (
	"io"
	"os"
)

// EmergencyReset restores a sane terminal without going through tcell
// Used from panic handlers where the screen's own Fini may not run
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored in crash context
	resetTerminalMode()
}
