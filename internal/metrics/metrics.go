package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Simplici0/auditcost/internal/estimator"
)

const namespace = "auditcost"

// Metrics exposes estimator activity to Prometheus.
type Metrics struct {
	registry *prometheus.Registry

	recomputes    prometheus.Counter
	adjustedTotal prometheus.Gauge
	components    *prometheus.GaugeVec
	pdfExports    *prometheus.CounterVec
	pdfDuration   prometheus.Histogram
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputes_total",
			Help:      "Number of breakdown recomputations triggered by input changes.",
		}),
		adjustedTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "adjusted_total_dollars",
			Help:      "Risk-adjusted total of the current estimate.",
		}),
		components: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "component_dollars",
			Help:      "Breakdown components of the current estimate.",
		}, []string{"component"}),
		pdfExports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pdf_exports_total",
			Help:      "PDF exports by result.",
		}, []string{"result"}),
		pdfDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pdf_export_duration_seconds",
			Help:      "Time spent rendering PDF exports.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.recomputes,
		m.adjustedTotal,
		m.components,
		m.pdfExports,
		m.pdfDuration,
	)
	return m
}

// Recomputed implements estimator.Observer.
func (m *Metrics) Recomputed(s estimator.Snapshot) {
	m.recomputes.Inc()
	m.adjustedTotal.Set(s.Breakdown.AdjustedTotal)
	for _, c := range s.Breakdown.Components() {
		m.components.WithLabelValues(c.Name).Set(c.Value)
	}
}

// ObservePDFExport records one PDF export attempt.
func (m *Metrics) ObservePDFExport(err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.pdfExports.WithLabelValues(result).Inc()
	m.pdfDuration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
