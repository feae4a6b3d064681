package ports

import "time"

// Progress is a point-in-time view of a running generation.
type Progress struct {
	Path         string
	TargetBytes  int64
	BytesWritten int64
	Lines        int64
}

// Summary describes a finished generation.
type Summary struct {
	Path         string
	TargetBytes  int64
	BytesWritten int64
	// FileSize is measured on disk after the file is closed.
	FileSize int64
	Lines    int64
	ByKind   map[LineKind]int64
	Elapsed  time.Duration
}

// AverageLineLength returns bytes written per line, or 0 if nothing was written.
func (s Summary) AverageLineLength() float64 {
	if s.Lines == 0 {
		return 0
	}
	return float64(s.BytesWritten) / float64(s.Lines)
}

// ProgressReporter observes a generation from start to finish. Every Start is
// followed by exactly one of Finish or Abort.
type ProgressReporter interface {
	Start(path string, targetBytes int64)
	Update(p Progress)
	Finish(s Summary) error
	// Abort releases any terminal state after a failed generation. No
	// summary is recorded.
	Abort(err error)
}

// ProgressMode names a console progress style.
type ProgressMode string

const (
	ProgressModeLog     ProgressMode = "log"
	ProgressModeSpinner ProgressMode = "spinner"
	ProgressModeBar     ProgressMode = "bar"
	ProgressModeNone    ProgressMode = "none"
)

// ReporterFactory is the port for looking up reporters by ProgressMode.
type ReporterFactory interface {
	// For returns a ProgressReporter for the given mode, or an error if unsupported.
	For(mode ProgressMode) (ProgressReporter, error)
}
