// Package metrics provides Prometheus metrics for the NCBI MCP server.
// It tracks tool call counts, latencies, upstream request rates, pacing
// delays, and BLAST engine activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "ncbi_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// EutilsRequestsTotal counts E-utilities requests by endpoint and status
	EutilsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "eutils_requests_total",
		Help:      "Total E-utilities requests by endpoint",
	}, []string{"endpoint", "status"})

	// EutilsRequestDuration measures E-utilities request latency
	EutilsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "eutils_request_duration_seconds",
		Help:      "E-utilities request latency distribution by endpoint",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"endpoint"})

	// PacerWaitSeconds measures time spent waiting on the shared pacer
	PacerWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "pacer_wait_seconds",
		Help:      "Time spent waiting for a request slot on the shared pacer",
		Buckets:   []float64{.001, .01, .05, .1, .2, .34, .5, 1, 2, 5},
	})

	// CatalogFallbacksTotal counts uses of the built-in database catalog
	CatalogFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "catalog_fallbacks_total",
		Help:      "Times the built-in database catalog was served because einfo failed",
	})

	// BlastSubmitsTotal counts BLAST submissions by outcome
	BlastSubmitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "blast_submits_total",
		Help:      "Total BLAST submissions by status",
	}, []string{"status"})

	// BlastPollsTotal counts BLAST status polls
	BlastPollsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "blast_polls_total",
		Help:      "Total BLAST status poll requests",
	})

	// BlastSearchDuration measures full submit-to-result BLAST latency
	BlastSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "blast_search_duration_seconds",
		Help:      "End-to-end BLAST search latency including polling",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordEutilsRequest records one E-utilities request
func RecordEutilsRequest(endpoint string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	EutilsRequestsTotal.WithLabelValues(endpoint, status).Inc()
	EutilsRequestDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordBlastSubmit records the outcome of a BLAST submission
func RecordBlastSubmit(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	BlastSubmitsTotal.WithLabelValues(status).Inc()
}
