// Package eventlog records translation runs: per-stage events for
// JSONL export and run summaries persisted to a local SQLite database.
package eventlog

import (
	"time"

	"github.com/google/uuid"
)

// Event is one pipeline stage observation within a run.
type Event struct {
	RunID      string                 `json:"run_id"`
	Stage      string                 `json:"stage"`
	Timestamp  time.Time              `json:"timestamp"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Run summarizes a completed translation.
type Run struct {
	ID            string
	Input         string
	Started       time.Time
	Finished      time.Time
	Operators     int
	SafeOperators int
	Places        int
	Transitions   int
	Unsolvable    bool
}

// Recorder accumulates events for a single run.
type Recorder struct {
	runID   string
	started time.Time
	events  []Event
}

// NewRecorder starts a new run with a fresh ID.
func NewRecorder() *Recorder {
	return &Recorder{
		runID:   uuid.NewString(),
		started: time.Now().UTC(),
	}
}

// RunID returns the run's unique identifier.
func (r *Recorder) RunID() string {
	return r.runID
}

// Started returns the run start time.
func (r *Recorder) Started() time.Time {
	return r.started
}

// Record appends a stage event.
func (r *Recorder) Record(stage string, attributes map[string]interface{}) {
	r.events = append(r.events, Event{
		RunID:      r.runID,
		Stage:      stage,
		Timestamp:  time.Now().UTC(),
		Attributes: attributes,
	})
}

// Events returns the recorded events in order.
func (r *Recorder) Events() []Event {
	return r.events
}
