// Package metrics provides Prometheus metrics for token operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for token operations.
type Metrics struct {
	enabled bool

	// Token issuance metrics
	tokensIssuedTotal  *prometheus.CounterVec
	tokenFailuresTotal *prometheus.CounterVec
	issueDuration      *prometheus.HistogramVec

	// Configuration metrics
	configChecksTotal *prometheus.CounterVec
}

// New creates and registers Prometheus metrics.
// If enabled is false, returns a no-op Metrics instance.
func New(enabled bool) *Metrics {
	m := &Metrics{enabled: enabled}

	if !enabled {
		return m
	}

	m.tokensIssuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videotoken_tokens_issued_total",
		Help: "Total tokens issued",
	}, []string{"type"})

	m.tokenFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videotoken_token_failures_total",
		Help: "Total failed token requests",
	}, []string{"type", "kind"})

	m.issueDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "videotoken_issue_duration_seconds",
		Help:    "Token issuance duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"type"})

	m.configChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videotoken_config_checks_total",
		Help: "Total configuration validations",
	}, []string{"result"})

	return m
}

// RecordIssued records a successfully issued token.
func (m *Metrics) RecordIssued(tokenType string, durationSeconds float64) {
	if !m.enabled {
		return
	}
	m.tokensIssuedTotal.WithLabelValues(tokenType).Inc()
	m.issueDuration.WithLabelValues(tokenType).Observe(durationSeconds)
}

// RecordFailure records a failed token request.
func (m *Metrics) RecordFailure(tokenType, kind string) {
	if !m.enabled {
		return
	}
	m.tokenFailuresTotal.WithLabelValues(tokenType, kind).Inc()
}

// RecordConfigCheck records a configuration validation result.
func (m *Metrics) RecordConfigCheck(valid bool) {
	if !m.enabled {
		return
	}
	result := "valid"
	if !valid {
		result = "invalid"
	}
	m.configChecksTotal.WithLabelValues(result).Inc()
}
