package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/hailam/bigtext/internal/ports"
	"github.com/hailam/bigtext/internal/utils"
)

// SpinnerReporter shows a terminal spinner with a running byte and line count.
type SpinnerReporter struct {
	s *spinner.Spinner
}

func NewSpinnerReporter(w io.Writer) *SpinnerReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	return &SpinnerReporter{s: s}
}

func (r *SpinnerReporter) Start(path string, targetBytes int64) {
	r.s.Suffix = fmt.Sprintf(" generating %s (%s MB)", path, formatMB(targetBytes))
	r.s.Start()
}

func (r *SpinnerReporter) Update(p ports.Progress) {
	r.s.Lock()
	r.s.Suffix = fmt.Sprintf(" %.1f MB / %s MB (lines: %s)",
		utils.ToMB(p.BytesWritten), formatMB(p.TargetBytes), utils.FormatCount(p.Lines))
	r.s.Unlock()
}

func (r *SpinnerReporter) Finish(ports.Summary) error {
	r.s.Stop()
	return nil
}

func (r *SpinnerReporter) Abort(error) {
	r.s.Stop()
}
