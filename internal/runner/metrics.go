package runner

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "a11yful"

// Metrics are run counters kept on a private registry. They are written out in the textfile
// format node exporters collect.
type Metrics struct {
	registry *prometheus.Registry

	FilesChecked  prometheus.Counter
	ParseProblems prometheus.Counter
	Reports       *prometheus.CounterVec
	CheckDuration prometheus.Histogram
}

// NewMetrics creates and registers run metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		FilesChecked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "files_checked_total",
			Help:      "Files parsed and checked.",
		}),
		ParseProblems: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "parse_problems_total",
			Help:      "Syntax errors the frontends recovered from.",
		}),
		Reports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reports_total",
			Help:      "Reports by rule and level.",
		}, []string{"rule", "level"}),
		CheckDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "check_duration_seconds",
			Help:      "Time spent parsing and checking a single file.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// Registry returns the registry metrics live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes metrics to path in the textfile format.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
