package progress

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/hailam/bigtext/internal/ports"
	"github.com/hailam/bigtext/internal/utils"
)

// LogReporter writes a start banner and one log line per progress update.
type LogReporter struct {
	log logrus.FieldLogger
}

func NewLogReporter(log logrus.FieldLogger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) Start(path string, targetBytes int64) {
	r.log.WithField("target_bytes", targetBytes).
		Infof("Start generating %s MB file: %s", formatMB(targetBytes), path)
}

func (r *LogReporter) Update(p ports.Progress) {
	r.log.WithFields(logrus.Fields{
		"lines": p.Lines,
		"bytes": p.BytesWritten,
	}).Infof("Progress: %.1f MB / %s MB (lines: %d)", utils.ToMB(p.BytesWritten), formatMB(p.TargetBytes), p.Lines)
}

func (r *LogReporter) Finish(s ports.Summary) error {
	r.log.WithFields(logrus.Fields{
		"lines":     s.Lines,
		"bytes":     s.BytesWritten,
		"file_size": s.FileSize,
		"elapsed":   s.Elapsed,
	}).Debug("generation finished")
	return nil
}

func (r *LogReporter) Abort(err error) {
	r.log.WithError(err).Warn("generation aborted")
}

// formatMB prints whole megabytes without decimals, e.g. "100" or "0.5".
func formatMB(n int64) string {
	return strconv.FormatFloat(utils.ToMB(n), 'f', -1, 64)
}
