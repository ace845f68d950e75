package metrics

import (
	"testing"
)

// Global metrics instance (reused across enabled tests to avoid Prometheus registry conflicts)
var globalMetrics *Metrics

func init() {
	globalMetrics = New(true)
}

func TestMetricsEnabled(t *testing.T) {
	if globalMetrics == nil {
		t.Fatal("metrics should not be nil")
	}
}

func TestMetricsDisabled(t *testing.T) {
	m := New(false)

	if m == nil {
		t.Fatal("metrics should not be nil (noop)")
	}

	// These should not panic even though they're noop
	m.RecordIssued("user", 0.001)
	m.RecordIssued("call", 0.002)
	m.RecordFailure("user", "missing_user_id")
	m.RecordConfigCheck(true)
	m.RecordConfigCheck(false)
}

func TestRecordIssued(t *testing.T) {
	// Should not panic
	globalMetrics.RecordIssued("user", 0.001)
	globalMetrics.RecordIssued("call", 0.002)
}

func TestRecordFailure(t *testing.T) {
	// Should not panic
	globalMetrics.RecordFailure("user", "missing_user_id")
	globalMetrics.RecordFailure("call", "missing_call_ids")
	globalMetrics.RecordFailure("call", "token_generation_failed")
}

func TestRecordConfigCheck(t *testing.T) {
	// Should not panic
	globalMetrics.RecordConfigCheck(true)
	globalMetrics.RecordConfigCheck(false)
}
