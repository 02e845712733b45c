package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"calypso-hq/sweeper/pkg/cleanup"
	"calypso-hq/sweeper/pkg/config"
)

// SweepMetrics tracks Prometheus metrics for cleanup passes.
//
// Metrics:
//   - sweeper_files_removed_total: files removed (or previewed), by root
//   - sweeper_runs_total: cleanup passes, by root and status
//   - sweeper_last_run_timestamp_seconds: completion time of the last pass
type SweepMetrics struct {
	registry *prometheus.Registry

	filesRemoved *prometheus.CounterVec
	runsTotal    *prometheus.CounterVec
	lastRun      *prometheus.GaugeVec
}

// New creates and registers sweep metrics. If registry is nil, a fresh
// registry is used.
func New(cfg *config.MetricsConfig, registry *prometheus.Registry) *SweepMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = config.DefaultMetricsNamespace
	}

	m := &SweepMetrics{
		registry: registry,

		filesRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "files_removed_total",
				Help:      "Total number of files removed by cleanup passes (dry-run passes count what would be removed)",
			},
			[]string{"root", "dry_run"},
		),

		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of cleanup passes by outcome",
			},
			[]string{"root", "status"},
		),

		lastRun: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix timestamp of the last completed cleanup pass",
			},
			[]string{"root"},
		),
	}

	registry.MustRegister(m.filesRemoved, m.runsTotal, m.lastRun)

	return m
}

// ObserveRun records the outcome of one cleanup pass.
func (m *SweepMetrics) ObserveRun(result *cleanup.Result, err error) {
	if result == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	dryRun := "false"
	if result.DryRun {
		dryRun = "true"
	}

	m.runsTotal.WithLabelValues(result.Root, status).Inc()
	m.filesRemoved.WithLabelValues(result.Root, dryRun).Add(float64(result.Removed))
	if !result.FinishedAt.IsZero() {
		m.lastRun.WithLabelValues(result.Root).Set(float64(result.FinishedAt.Unix()))
	}
}

// Handler returns an HTTP handler exposing the registered metrics in the
// Prometheus exposition format.
func (m *SweepMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Registry returns the underlying Prometheus registry.
func (m *SweepMetrics) Registry() *prometheus.Registry {
	return m.registry
}
