// Package metrics exposes Prometheus collectors for score evaluations and HTTP traffic.
package metrics

import (
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wonny/altman/internal/contracts"
)

const namespace = "altman"

// Metrics owns a private registry so several servers (and tests) can coexist
// ⭐ SSOT: 메트릭 정의는 여기서만
type Metrics struct {
	registry *prometheus.Registry

	evaluations *prometheus.CounterVec
	nonFinite   *prometheus.CounterVec
	scores      prometheus.Histogram
	rejected    *prometheus.CounterVec
	requests    *prometheus.HistogramVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Z-Score evaluations by resulting zone and caller.",
		}, []string{"zone", "source"}),
		nonFinite: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "non_finite_scores_total",
			Help:      "Evaluations that produced Inf or NaN.",
		}, []string{"source"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "z_score",
			Help:      "Distribution of finite Z-Scores.",
			Buckets:   []float64{0, 1, 1.81, 2.5, 2.99, 4, 6, 10},
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_inputs_total",
			Help:      "Snapshots rejected before scoring, by field.",
		}, []string{"field"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		m.evaluations,
		m.nonFinite,
		m.scores,
		m.rejected,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveResult records one evaluation. A nil *Metrics is a no-op.
func (m *Metrics) ObserveResult(source string, r contracts.ScoreResult) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(string(r.Zone), source).Inc()

	if !r.Finite || math.IsNaN(r.ZScore) || math.IsInf(r.ZScore, 0) {
		m.nonFinite.WithLabelValues(source).Inc()
		return
	}
	m.scores.Observe(r.ZScore)
}

// ObserveRejected records a snapshot that failed boundary validation
func (m *Metrics) ObserveRejected(field string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(field).Inc()
}

// ObserveRequest records one HTTP request
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, status).Observe(d.Seconds())
}

// Handler serves the registry in Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
