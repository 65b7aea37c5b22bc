package deploy

import (
	"sync"
	"time"
)

// StageTiming records the wall-clock window of one stage.
type StageTiming struct {
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
}

// Duration returns the stage wall-clock time.
func (t StageTiming) Duration() time.Duration {
	return t.EndedAt.Sub(t.StartedAt)
}

// Metrics collects per-stage timings and the overall run duration.
type Metrics struct {
	mu        sync.Mutex
	startedAt time.Time
	endedAt   time.Time
	timings   map[string]StageTiming
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{timings: make(map[string]StageTiming)}
}

// Start marks the beginning of the run.
func (m *Metrics) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startedAt = time.Now()
}

// Finish marks the end of the run.
func (m *Metrics) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.endedAt = time.Now()
}

// RecordStage stores the timing window for one stage.
func (m *Metrics) RecordStage(name string, startedAt, endedAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = StageTiming{StartedAt: startedAt, EndedAt: endedAt}
}

// StageTiming returns the recorded window for one stage.
func (m *Metrics) StageTiming(name string) (StageTiming, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.timings[name]
	return t, ok
}

// Timings returns a copy of all recorded stage windows, keyed by stage name.
func (m *Metrics) Timings() map[string]StageTiming {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]StageTiming, len(m.timings))
	for name, t := range m.timings {
		out[name] = t
	}
	return out
}

// StartedAt returns the run start time.
func (m *Metrics) StartedAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startedAt
}

// Duration returns the overall wall-clock duration of the run.
func (m *Metrics) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.endedAt.Sub(m.startedAt)
}
