package apps

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// startProgress shows an indeterminate tracker until the returned func is
// called with the outcome of the work.
func startProgress(out io.Writer, message string) func(error) {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetAutoStop(true)
	pw.SetTrackerLength(20)
	pw.SetMessageWidth(len(message))
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Options.Separator = " "
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Percentage = false
	pw.Style().Visibility.Value = false
	pw.Style().Visibility.TrackerOverall = false
	pw.Style().Visibility.Time = true

	tracker := &progress.Tracker{Message: message}
	pw.AppendTracker(tracker)

	go pw.Render()
	for !pw.IsRenderInProgress() {
		time.Sleep(time.Millisecond)
	}

	return func(err error) {
		if err != nil {
			tracker.MarkAsErrored()
		} else {
			tracker.MarkAsDone()
		}
		for pw.IsRenderInProgress() {
			time.Sleep(10 * time.Millisecond)
		}
	}
}
