package factory

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hailam/bigtext/internal/adapters/progress"
	"github.com/hailam/bigtext/internal/ports"
)

// StaticReporterFactory builds console progress reporters by mode.
type StaticReporterFactory struct {
	builders map[ports.ProgressMode]func() ports.ProgressReporter
}

// NewStaticReporterFactory creates a factory whose reporters draw on out and log.
func NewStaticReporterFactory(out io.Writer, log logrus.FieldLogger) ports.ReporterFactory {
	return &StaticReporterFactory{
		builders: map[ports.ProgressMode]func() ports.ProgressReporter{
			ports.ProgressModeLog:     func() ports.ProgressReporter { return progress.NewLogReporter(log) },
			ports.ProgressModeSpinner: func() ports.ProgressReporter { return progress.NewSpinnerReporter(out) },
			ports.ProgressModeBar:     func() ports.ProgressReporter { return progress.NewBarReporter(out) },
			ports.ProgressModeNone:    func() ports.ProgressReporter { return progress.Nop{} },
		},
	}
}

// For returns a fresh ProgressReporter for the given mode.
func (f *StaticReporterFactory) For(mode ports.ProgressMode) (ports.ProgressReporter, error) {
	build, ok := f.builders[mode]
	if !ok {
		return nil, fmt.Errorf("unsupported progress mode: '%s'", mode)
	}
	return build(), nil
}
