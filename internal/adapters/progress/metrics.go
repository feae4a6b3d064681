package progress

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hailam/bigtext/internal/ports"
)

const (
	metricsNamespace = "bigtext"
	metricsSubsystem = "generator"
)

// MetricsReporter writes run statistics to a Prometheus textfile on finish,
// in the format read by node_exporter's textfile collector.
type MetricsReporter struct {
	path     string
	registry *prometheus.Registry

	targetBytes  prometheus.Gauge
	bytesWritten prometheus.Gauge
	fileSize     prometheus.Gauge
	duration     prometheus.Gauge
	lines        *prometheus.GaugeVec
}

func NewMetricsReporter(path string) *MetricsReporter {
	r := &MetricsReporter{
		path:     path,
		registry: prometheus.NewRegistry(),
		targetBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "target_bytes",
			Help:      "requested minimum size of the generated file",
		}),
		bytesWritten: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "bytes_written",
			Help:      "bytes written by the generator",
		}),
		fileSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "file_size_bytes",
			Help:      "size of the generated file as reported by the filesystem",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "duration_seconds",
			Help:      "wall time spent generating the file",
		}),
		lines: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "lines",
			Help:      "generated lines by content kind",
		}, []string{"kind"}),
	}
	r.registry.MustRegister(r.targetBytes, r.bytesWritten, r.fileSize, r.duration, r.lines)
	return r
}

func (r *MetricsReporter) Start(_ string, targetBytes int64) {
	r.targetBytes.Set(float64(targetBytes))
}

func (r *MetricsReporter) Update(p ports.Progress) {
	r.bytesWritten.Set(float64(p.BytesWritten))
}

// Abort writes nothing, so a previous textfile at path is left untouched.
func (r *MetricsReporter) Abort(error) {}

func (r *MetricsReporter) Finish(s ports.Summary) error {
	r.targetBytes.Set(float64(s.TargetBytes))
	r.bytesWritten.Set(float64(s.BytesWritten))
	r.fileSize.Set(float64(s.FileSize))
	r.duration.Set(s.Elapsed.Seconds())
	for _, kind := range ports.LineKinds {
		r.lines.WithLabelValues(string(kind)).Set(float64(s.ByKind[kind]))
	}
	if err := prometheus.WriteToTextfile(r.path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", r.path, err)
	}
	return nil
}
