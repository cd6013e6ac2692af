// Package stats accumulates session statistics for the overlay panel.
package stats

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/gesture"
)

// Tracker accumulates a session's gesture observations. It is purely
// additive: counts never decrement and nothing is persisted.
type Tracker struct {
	mu        sync.Mutex
	sessionID string
	start     time.Time
	total     int
	counts    map[gesture.Label]int
	order     []gesture.Label
}

// NewTracker creates a Tracker with the session clock started.
func NewTracker() *Tracker {
	return &Tracker{
		sessionID: uuid.NewString(),
		start:     time.Now(),
		counts:    make(map[gesture.Label]int),
	}
}

// SessionID returns the unique id for this session, used to correlate
// log lines.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// Record counts one observation of the given gesture. Frames with no
// detected hands are never recorded.
func (t *Tracker) Record(label gesture.Label) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, seen := t.counts[label]; !seen {
		t.order = append(t.order, label)
	}
	t.counts[label]++
	t.total++
}

// Total returns the number of gesture observations so far.
func (t *Tracker) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Elapsed returns the runtime since the tracker was created.
func (t *Tracker) Elapsed() time.Duration {
	return time.Since(t.start)
}

// MostCommon returns the histogram entry with the highest count. Ties
// break toward the label observed first. ok is false before any
// observation.
func (t *Tracker) MostCommon() (label gesture.Label, count int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mostCommonLocked()
}

func (t *Tracker) mostCommonLocked() (label gesture.Label, count int, ok bool) {
	for _, l := range t.order {
		if t.counts[l] > count {
			label = l
			count = t.counts[l]
			ok = true
		}
	}
	return label, count, ok
}

// Snapshot is an immutable view of the session statistics for display.
type Snapshot struct {
	Elapsed     time.Duration
	Total       int
	MostCommon  gesture.Label
	CommonCount int
	HasCommon   bool
}

// Snapshot captures the current statistics in one locked pass.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	label, count, ok := t.mostCommonLocked()
	return Snapshot{
		Elapsed:     time.Since(t.start),
		Total:       t.total,
		MostCommon:  label,
		CommonCount: count,
		HasCommon:   ok,
	}
}
