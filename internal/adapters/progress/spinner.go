package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// SpinnerSink reports pipeline stages with a terminal spinner.
type SpinnerSink struct {
	spinner *spinner.Spinner
	stage   string
	started time.Time
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if r.stage != "" && r.stage != event.Stage {
		r.completeCurrentStage()
	}

	r.stage = event.Stage
	r.started = time.Now()
	r.spinner.Suffix = " " + event.Message

	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
		fmt.Println(event.Message)
	}
}

// Info stops the spinner and prints a success line.
func (r *SpinnerSink) Info(message string) {
	if r.stage != "" {
		r.completeCurrentStage()
		r.stage = ""
	}
	fmt.Printf("%s %s\n", color.GreenString("✓"), message)
}

// Error stops the spinner and prints an error line to stderr.
func (r *SpinnerSink) Error(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	r.stage = ""
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), message)
}

func (r *SpinnerSink) completeCurrentStage() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	elapsed := time.Since(r.started).Round(100 * time.Millisecond)
	fmt.Printf("%s %s (%s)\n", color.GreenString("✓"), r.stage, elapsed)
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
