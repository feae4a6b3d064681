package progress

import (
	"errors"

	"github.com/hailam/bigtext/internal/ports"
)

// Multi forwards every event to each reporter in order.
type Multi []ports.ProgressReporter

func (m Multi) Start(path string, targetBytes int64) {
	for _, r := range m {
		r.Start(path, targetBytes)
	}
}

func (m Multi) Update(p ports.Progress) {
	for _, r := range m {
		r.Update(p)
	}
}

// Finish calls every reporter even if one fails and joins their errors.
func (m Multi) Finish(s ports.Summary) error {
	var errs []error
	for _, r := range m {
		if err := r.Finish(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Abort(err error) {
	for _, r := range m {
		r.Abort(err)
	}
}

// Nop discards all events.
type Nop struct{}

func (Nop) Start(string, int64)        {}
func (Nop) Update(ports.Progress)      {}
func (Nop) Finish(ports.Summary) error { return nil }
func (Nop) Abort(error)                {}
