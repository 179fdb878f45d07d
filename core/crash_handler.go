// Package core holds process-level crash handling shared by the hosts.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/particle-field/terminal"
)

// exit is swapped in tests
var exit = os.Exit

// HandleCrash resets the terminal, prints the panic value and stack, then exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal before anything reaches stderr
	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()

	writeCrash(os.Stderr, r, debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// writeCrash prints a crash report with CRLF endings so it renders even if the tty is still raw
func writeCrash(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}

// Guard wraps an errgroup task so a panic inside it goes through HandleCrash
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
