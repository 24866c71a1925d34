// Package metrics exposes Prometheus collectors for the catalog pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pipelineFetchesTotal      *prometheus.CounterVec
	pipelineRecordsTotal      *prometheus.CounterVec
	pipelineAdapterFailures   *prometheus.CounterVec
	pipelineRunSeconds        prometheus.Histogram
	httpRequestsTotal         *prometheus.CounterVec
	httpRequestDurationSecond *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		pipelineFetchesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assist_fetches_total",
				Help: "Total page fetches attempted, labeled by source and outcome.",
			},
			[]string{"source", "outcome"},
		)

		pipelineRecordsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assist_records_total",
				Help: "Total catalog records written, labeled by kind and result.",
			},
			[]string{"kind", "result"},
		)

		pipelineAdapterFailures = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assist_adapter_failures_total",
				Help: "Total source adapter runs that failed outright.",
			},
			[]string{"source"},
		)

		pipelineRunSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assist_pipeline_run_seconds",
				Help:    "Histogram of full pipeline run durations.",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSecond = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveFetch increments the fetch counter for one attempted page fetch.
// Outcome is one of "ok", "http_error", "transport_error", "deduped".
func ObserveFetch(source, outcome string) {
	if pipelineFetchesTotal == nil {
		return
	}
	pipelineFetchesTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveRecord increments the record counter. Kind is "program", "provider"
// or "income_limit"; result is "inserted", "updated" or "error".
func ObserveRecord(kind, result string) {
	if pipelineRecordsTotal == nil {
		return
	}
	pipelineRecordsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveAdapterFailure increments the failure counter for a source adapter.
func ObserveAdapterFailure(source string) {
	if pipelineAdapterFailures == nil {
		return
	}
	pipelineAdapterFailures.WithLabelValues(source).Inc()
}

// ObserveRun records the duration of a complete pipeline run.
func ObserveRun(duration time.Duration) {
	if pipelineRunSeconds == nil {
		return
	}
	pipelineRunSeconds.Observe(duration.Seconds())
}

// ObserveHTTPRequest increments the HTTP request metrics for the read API.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSecond.WithLabelValues(method, route).Observe(duration.Seconds())
}
