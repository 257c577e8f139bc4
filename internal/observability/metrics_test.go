package observability

import (
	"testing"
	"time"
)

func TestSnapshotAggregatesCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/employees", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/employees", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/auth/login", "POST", 401, time.Millisecond)
	m.RecordError("/auth/login", "POST", "AUTHENTICATION_FAILED")
	m.RecordEvent("employee_submitted")

	snap := m.Snapshot()
	if len(snap.Requests) != 2 {
		t.Fatalf("expected 2 request counters, got %d", len(snap.Requests))
	}
	first := snap.Requests[0]
	if first.Path != "/auth/login" || first.Label != "401" || first.Count != 1 {
		t.Fatalf("unexpected first counter %+v", first)
	}
	second := snap.Requests[1]
	if second.Count != 2 || second.AvgMS != 20 {
		t.Fatalf("expected 2 requests averaging 20ms, got %+v", second)
	}
	if len(snap.Errors) != 1 || snap.Errors[0].Label != "AUTHENTICATION_FAILED" {
		t.Fatalf("unexpected errors %+v", snap.Errors)
	}
	if snap.Events["employee_submitted"] != 1 {
		t.Fatalf("expected event count, got %v", snap.Events)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, 0)
	m.RecordError("/", "GET", "X")
	m.RecordEvent("x")
	if snap := m.Snapshot(); snap.Requests == nil || snap.Events == nil {
		t.Fatalf("expected empty non-nil snapshot")
	}
}
