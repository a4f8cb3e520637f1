package ui

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner shows message with a spinner on w until the returned stop
// func is called. stop prints final, if not empty, in place of the spinner.
func StartSpinner(w io.Writer, message string) (stop func(final string)) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")
	s.Start()

	return func(final string) {
		if final != "" {
			s.FinalMSG = EnsureNewline(final)
		}
		s.Stop()
	}
}
