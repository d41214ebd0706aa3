// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

// Package metrics provides Prometheus instrumentation for Catalogus:
// catalog loads and size, exploration queries, classifier collaborator
// calls, circuit breaker state, and API endpoint latency/throughput.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog metrics
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog load attempts",
		},
		[]string{"status"}, // "success", "error"
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of title records in the current catalog snapshot",
		},
	)

	// Exploration metrics
	ExploreQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explore_queries_total",
			Help: "Total number of exploration queries",
		},
		[]string{"operation"}, // "filter", "similar", "summary"
	)

	// Classifier collaborator metrics
	ClassifierRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_requests_total",
			Help: "Total number of classifier collaborator requests",
		},
		[]string{"status"}, // "success", "error"
	)

	ClassifierDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classifier_request_duration_seconds",
			Help:    "Classifier collaborator request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordCatalogLoad records one catalog load attempt.
func RecordCatalogLoad(status string) {
	CatalogLoads.WithLabelValues(status).Inc()
}

// SetCatalogSize records the size of the current catalog snapshot.
func SetCatalogSize(records int) {
	CatalogSize.Set(float64(records))
}

// RecordExploreQuery records one exploration query by operation.
func RecordExploreQuery(operation string) {
	ExploreQueries.WithLabelValues(operation).Inc()
}

// RecordClassifierRequest records one collaborator request outcome with
// its duration.
func RecordClassifierRequest(status string, duration time.Duration) {
	ClassifierRequests.WithLabelValues(status).Inc()
	ClassifierDuration.Observe(duration.Seconds())
}

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks the in-flight API request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
