package terminal

// Sequences written directly to the tty on crash paths, when the tcell screen can't be trusted
var (
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0 = []byte("\x1b[0m")

	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")

	// Mouse tracking off: motion, drag, click, SGR extended
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
)
