// Package metrics exposes the Prometheus collectors for the analytics API.
package metrics

import (
	"sync"

	"github.com/menstrualmentor/backend/internal/analysis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the analytics engine and its HTTP surface.
type Metrics struct {
	// Engine outputs
	AnalysesTotal       *prometheus.CounterVec
	AlertsTotal         *prometheus.CounterVec
	PhaseEstimatesTotal *prometheus.CounterVec
	ImageRiskTotal      *prometheus.CounterVec
	AdvisoriesTotal     *prometheus.CounterVec

	// HTTP
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers the metrics once per process; later calls
// return the same instance.
//
// Metrics:
//   - mentor_analyses_total{kind} - analyses computed ("lightweight", "detailed", "image", "text")
//   - mentor_alerts_total{alert} - alerts emitted by the lightweight analysis
//   - mentor_phase_estimates_total{phase} - phase estimates returned
//   - mentor_image_risk_total{level} - image classifications by risk level
//   - mentor_advisories_total{source} - text advisories by source ("model", "fallback")
//   - mentor_http_request_duration_seconds{method,route,status}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			AnalysesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "mentor_analyses_total",
					Help: "Total number of analyses computed",
				},
				[]string{"kind"},
			),

			AlertsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "mentor_alerts_total",
					Help: "Total number of cycle alerts emitted",
				},
				[]string{"alert"},
			),

			PhaseEstimatesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "mentor_phase_estimates_total",
					Help: "Total number of phase estimates returned",
				},
				[]string{"phase"},
			),

			ImageRiskTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "mentor_image_risk_total",
					Help: "Total number of image classifications by risk level",
				},
				[]string{"level"},
			),

			AdvisoriesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "mentor_advisories_total",
					Help: "Total number of text advisories by source",
				},
				[]string{"source"},
			),

			RequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "mentor_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route", "status"},
			),
		}
	})

	return globalMetrics
}

// RecordAnalysis increments the analysis counter for kind.
func (m *Metrics) RecordAnalysis(kind string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(kind).Inc()
}

// RecordCycleAnalysis records the phase and every alert of a lightweight analysis.
func (m *Metrics) RecordCycleAnalysis(phase string, alerts []string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues("lightweight").Inc()
	m.PhaseEstimatesTotal.WithLabelValues(phase).Inc()
	for _, a := range alerts {
		m.AlertsTotal.WithLabelValues(alertLabel(a)).Inc()
	}
}

// RecordImageRisk records one image classification.
func (m *Metrics) RecordImageRisk(level string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues("image").Inc()
	m.ImageRiskTotal.WithLabelValues(level).Inc()
}

// RecordAdvisory records one text advisory.
func (m *Metrics) RecordAdvisory(source string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues("text").Inc()
	m.AdvisoriesTotal.WithLabelValues(source).Inc()
}

// alertLabel keeps label cardinality bounded to the known alerts.
func alertLabel(alert string) string {
	if label, ok := alertLabels[alert]; ok {
		return label
	}
	return "other"
}

var alertLabels = map[string]string{
	analysis.AlertLongCycle:  "long_cycle",
	analysis.AlertShortCycle: "short_cycle",
	analysis.AlertFatigue:    "fatigue",
}
