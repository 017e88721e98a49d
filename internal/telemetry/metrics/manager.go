package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds every metric the service exports. Vec label names are listed
// next to each field.
type Manager struct {
	CounterRequests            *prometheus.CounterVec // method, status
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterSuggestions         *prometheus.CounterVec // source
	CounterRemoteFailures      *prometheus.CounterVec // operation
	CounterIngestedRecords     *prometheus.CounterVec // kind, source

	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	HistogramRequestDuration *prometheus.HistogramVec // route, method, status_code
	HistogramReadinessIndex  *prometheus.HistogramVec // source
}

func NewTestManager() *Manager {
	m, _ := NewTestManagerAndRegistry()
	return m
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help,
		}, labels)
	}
	gauge := func(name, help string) prometheus.Gauge {
		return factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help,
		})
	}
	histogram := func(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
		return factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help, Buckets: buckets,
		}, labels)
	}

	return &Manager{
		CounterRequests: counter("request",
			"The total number of incoming requests", "method", "status"),
		CounterHandleRequestPanic: counter("handle_request_panic",
			"The total number of serve request panics").WithLabelValues(),
		CounterRateLimitedRequests: counter("rate_limited_requests",
			"The total number of rate limited write requests").WithLabelValues(),
		CounterSuggestions: counter("progression_suggestions",
			"The total number of progression suggestions, by the strategy that produced them", "source"),
		CounterRemoteFailures: counter("remote_scoring_failures",
			"The total number of failed remote scoring calls that fell back to local handling", "operation"),
		CounterIngestedRecords: counter("ingested_records",
			"The total number of ingested surveys and session logs", "kind", "source"),

		GaugeRequests: gauge("current_requests",
			"Current number of open client connections"),
		GaugeLifeSignal: gauge("life_signal",
			"Shows whether the service is alive"),

		HistogramRequestDuration: histogram("request_duration_seconds",
			"Histogram of response time for requests in seconds",
			[]float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			"route", "method", "status_code"),
		HistogramReadinessIndex: histogram("readiness_index",
			"Distribution of the readiness index of returned suggestions",
			prometheus.LinearBuckets(0.1, 0.1, 10),
			"source"),
	}
}
