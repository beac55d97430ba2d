package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/capitaldao/veto-cli/internal/usecase"
)

// SpinnerSink reports staged writes with a spinner showing the stage trail
type SpinnerSink struct {
	out     io.Writer
	spinner *spinner.Spinner
	stages  []stageInfo
	now     func() time.Time
}

type stageInfo struct {
	Name      string
	Message   string
	Current   int
	Total     int
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerSink creates a spinner writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return NewSpinnerSinkWithWriter(os.Stderr)
}

// NewSpinnerSinkWithWriter creates a spinner writing to out
func NewSpinnerSinkWithWriter(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
		now:     time.Now,
	}
}

// OnProgress starts a new stage when the stage name changes and refreshes the spinner text
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if n := len(r.stages); n == 0 || r.stages[n-1].Name != event.Stage {
		r.completeCurrentStage()
		r.stages = append(r.stages, stageInfo{
			Name:      event.Stage,
			StartTime: r.now(),
		})
	}
	current := &r.stages[len(r.stages)-1]
	current.Message = event.Message
	current.Current = event.Current
	current.Total = event.Total

	r.spinner.Suffix = " " + r.display()
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.print(color.New(color.FgRed), message)
}

// Stop ends the current stage and the spinner
func (r *SpinnerSink) Stop() {
	r.completeCurrentStage()
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerSink) print(c *color.Color, message string) {
	// Stop spinner temporarily
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerSink) completeCurrentStage() {
	if n := len(r.stages); n > 0 && r.stages[n-1].EndTime.IsZero() {
		r.stages[n-1].EndTime = r.now()
	}
}

// display renders completed stages followed by the running one
func (r *SpinnerSink) display() string {
	var display string
	for i, stage := range r.stages {
		icon := "●"
		stageColor := color.New(color.FgYellow)
		duration := ""
		if !stage.EndTime.IsZero() {
			icon = "✓"
			stageColor = color.New(color.FgGreen)
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		label := stage.Message
		if label == "" {
			label = stage.Name
		}
		if stage.Total > 0 {
			label = fmt.Sprintf("[%d/%d] %s", stage.Current, stage.Total, label)
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(label), duration)
	}
	return display
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
