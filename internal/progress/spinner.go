package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Enabled is false when stdout is not a terminal; tests and CI never spin.
var Enabled = isatty.IsTerminal(os.Stdout.Fd())

// Start shows a spinner with msg until the returned stop func is called.
func Start(msg string) (stop func()) {
	if !Enabled {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	s.HideCursor = false
	s.Start()
	return s.Stop
}
