package observability

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu           sync.Mutex
	startedAt    time.Time
	requestCount map[string]int64
	errorCount   map[string]int64
	latency      map[string]time.Duration
	eventCount   map[string]int64
}

// Counter is one labeled counter value in a snapshot.
type Counter struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Label  string `json:"label"`
	Count  int64  `json:"count"`
	AvgMS  int64  `json:"avg_ms,omitempty"`
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	UptimeSeconds int64            `json:"uptime_seconds"`
	Requests      []Counter        `json:"requests"`
	Errors        []Counter        `json:"errors"`
	Events        map[string]int64 `json:"events"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		startedAt:    time.Now(),
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		latency:      make(map[string]time.Duration),
		eventCount:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, strconv.Itoa(status))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.latency[key] += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := pathKey(path, method, code)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordEvent counts a dispatched domain event.
func (m *Metrics) RecordEvent(eventType string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventCount[eventType]++
}

// Snapshot copies the counters, sorted by key.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{Requests: []Counter{}, Errors: []Counter{}, Events: map[string]int64{}}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		UptimeSeconds: int64(time.Since(m.startedAt).Seconds()),
		Requests:      make([]Counter, 0, len(m.requestCount)),
		Errors:        make([]Counter, 0, len(m.errorCount)),
		Events:        make(map[string]int64, len(m.eventCount)),
	}
	for key, count := range m.requestCount {
		c := splitKey(key, count)
		if count > 0 {
			c.AvgMS = (m.latency[key] / time.Duration(count)).Milliseconds()
		}
		snap.Requests = append(snap.Requests, c)
	}
	for key, count := range m.errorCount {
		snap.Errors = append(snap.Errors, splitKey(key, count))
	}
	for name, count := range m.eventCount {
		snap.Events[name] = count
	}
	sortCounters(snap.Requests)
	sortCounters(snap.Errors)
	return snap
}

func pathKey(path, method, label string) string {
	return path + "|" + method + "|" + label
}

func splitKey(key string, count int64) Counter {
	parts := strings.SplitN(key, "|", 3)
	c := Counter{Count: count}
	if len(parts) == 3 {
		c.Path, c.Method, c.Label = parts[0], parts[1], parts[2]
	}
	return c
}

func sortCounters(cs []Counter) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Path != cs[j].Path {
			return cs[i].Path < cs[j].Path
		}
		if cs[i].Method != cs[j].Method {
			return cs[i].Method < cs[j].Method
		}
		return cs[i].Label < cs[j].Label
	})
}
