// Package metrics exposes Prometheus collectors for the HTTP API, the
// keyword classifier and the notification gate.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "conseccomms"

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ClassificationsTotal *prometheus.CounterVec
	ClassifierConfidence *prometheus.HistogramVec

	GateDecisionsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New registers every collector, plus the Go runtime and process
// collectors, on a private registry.
func New() (*Metrics, error) {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ClassificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "classifications_total",
			Help:      "Keyword classifications by domain and resulting category.",
		}, []string{"domain", "category"}),
		ClassifierConfidence: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "confidence",
			Help:      "Distribution of classifier confidence by domain.",
			Buckets:   []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 0.98},
		}, []string{"domain"}),
		GateDecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "gate_decisions_total",
			Help:      "Notification gate decisions by category and outcome.",
		}, []string{"category", "outcome"}),
		registry: prometheus.NewRegistry(),
	}

	for _, c := range []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ClassificationsTotal,
		m.ClassifierConfidence,
		m.GateDecisionsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordGateDecision implements the notification use case's GateRecorder.
func (m *Metrics) RecordGateDecision(category string, allowed bool) {
	outcome := "suppressed"
	if allowed {
		outcome = "allowed"
	}
	m.GateDecisionsTotal.WithLabelValues(category, outcome).Inc()
}

func (m *Metrics) RecordClassification(domain, category string, confidence float64) {
	m.ClassificationsTotal.WithLabelValues(domain, category).Inc()
	m.ClassifierConfidence.WithLabelValues(domain).Observe(confidence)
}
