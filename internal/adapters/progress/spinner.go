package progress

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// SpinnerSink reports progress with a terminal spinner. Info and Error lines
// pause the spinner so output does not tear.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + event.Message
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.interrupt(func() {
		color.New(color.FgCyan).Println(message)
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.interrupt(func() {
		color.New(color.FgRed).Println(message)
	})
}

// interrupt stops the spinner around fn and restarts it afterwards.
func (r *SpinnerSink) interrupt(fn func()) {
	wasActive := r.spinner != nil && r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
