package dataset

import (
	"sync"

	"fxlabel-go/internal/runner"
)

// Memory stores labeled decision points in memory for quick inspection.
type Memory struct {
	mu   sync.Mutex
	rows []runner.Labeled
}

// NewMemory creates an empty sink optionally pre-sizing storage.
func NewMemory(capacity int) *Memory {
	if capacity < 0 {
		capacity = 0
	}
	return &Memory{rows: make([]runner.Labeled, 0, capacity)}
}

// Record appends a labeled decision point.
func (m *Memory) Record(row runner.Labeled) {
	m.mu.Lock()
	m.rows = append(m.rows, row)
	m.mu.Unlock()
}

// Snapshot returns a copy of the recorded rows.
func (m *Memory) Snapshot() []runner.Labeled {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]runner.Labeled, len(m.rows))
	copy(out, m.rows)
	return out
}

// Reset clears all stored rows.
func (m *Memory) Reset() {
	m.mu.Lock()
	m.rows = m.rows[:0]
	m.mu.Unlock()
}
