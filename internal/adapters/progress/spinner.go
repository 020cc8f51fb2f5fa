package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// SpinnerSink shows a spinner on stderr while a batch is listed and resolved.
// The spinner stays silent when the writer is not a terminal.
type SpinnerSink struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
	started time.Time
}

// NewSpinnerSink creates a spinner sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// ProvideProgressSink picks the sink for the current run. JSON output never
// gets a spinner so the stream stays machine readable.
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr)
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.IsZero() {
		s.started = time.Now()
	}

	if event.Spinner {
		s.spinner.Suffix = " " + event.Message
		if !s.spinner.Active() {
			s.spinner.Start()
		}
		return
	}

	if s.spinner.Active() {
		s.spinner.Stop()
		if event.Stage == "completed" {
			fmt.Fprintln(s.out, color.New(color.Faint).Sprintf("Resolved %d files in %s",
				event.Total, time.Since(s.started).Round(time.Millisecond)))
		}
	}
}

// Info prints an info message
func (s *SpinnerSink) Info(message string) {
	s.pause(func() {
		fmt.Fprintln(s.out, color.New(color.FgCyan).Sprint(message))
	})
}

// Error prints an error message
func (s *SpinnerSink) Error(message string) {
	s.pause(func() {
		fmt.Fprintln(s.out, color.New(color.FgRed).Sprint(message))
	})
}

// pause stops the spinner around fn so messages are not overwritten
func (s *SpinnerSink) pause(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasActive := s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}
	fn()
	if wasActive {
		s.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
