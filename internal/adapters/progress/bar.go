package progress

import (
	"io"
	"path/filepath"

	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/hailam/bigtext/internal/ports"
)

const progressBarWidth = 40

// BarReporter renders a byte-counting progress bar.
type BarReporter struct {
	out io.Writer
	p   *mpb.Progress
	bar *mpb.Bar
}

func NewBarReporter(out io.Writer) *BarReporter {
	return &BarReporter{out: out}
}

func (r *BarReporter) Start(path string, targetBytes int64) {
	r.p = mpb.New(mpb.WithOutput(r.out), mpb.WithWidth(progressBarWidth))
	r.bar = r.p.AddBar(max(targetBytes, 0),
		mpb.PrependDecorators(
			decor.Name(filepath.Base(path), decor.WCSyncSpaceR),
			decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
		),
	)
}

func (r *BarReporter) Update(p ports.Progress) {
	if r.bar == nil {
		return
	}
	r.bar.SetCurrent(p.BytesWritten)
}

// Finish completes the bar and waits for the final render.
func (r *BarReporter) Finish(s ports.Summary) error {
	if r.bar == nil {
		return nil
	}
	r.bar.SetCurrent(s.BytesWritten)
	r.bar.SetTotal(0, true)
	r.p.Wait()
	return nil
}

// Abort stops the bar where it is, leaving it on screen.
func (r *BarReporter) Abort(error) {
	if r.bar == nil {
		return
	}
	r.bar.Abort(false)
	r.p.Wait()
}
