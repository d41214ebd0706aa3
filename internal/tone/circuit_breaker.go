// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package tone

import (
	"context"
	"time"

	"github.com/jmorley-dev/catalogus/internal/logging"
	"github.com/jmorley-dev/catalogus/internal/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
)

// CircuitBreakerClassifier wraps a Classifier with a circuit breaker so a
// slow or dead classifier service cannot drag down title detail requests.
//
// The breaker uses real time for its interval and timeout windows. Unit
// tests should exercise the wrapped classifier directly.
type CircuitBreakerClassifier struct {
	inner Classifier
	cb    *gobreaker.CircuitBreaker[Prediction]
	name  string
}

// NewCircuitBreakerClassifier wraps inner with breaker protection:
// 3 concurrent half-open probes, a 1 minute measurement window, a
// 2 minute open timeout, tripping at a 60% failure rate over at least
// 10 requests.
func NewCircuitBreakerClassifier(inner Classifier) *CircuitBreakerClassifier {
	cbName := "tone-classifier"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[Prediction](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreakerClassifier{inner: inner, cb: cb, name: cbName}
}

// Classify runs the exchange under breaker protection. Rejections while
// the circuit is open surface as *ClassificationError like any other
// classifier failure.
func (c *CircuitBreakerClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	pred, err := c.cb.Execute(func() (Prediction, error) {
		return c.inner.Classify(ctx, text)
	})
	if err != nil {
		if _, ok := err.(*ClassificationError); !ok {
			err = &ClassificationError{Op: "breaker", Err: err}
		}
		return Prediction{}, err
	}
	return pred, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
