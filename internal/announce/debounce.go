// Package announce decides when a finger count change is spoken and
// dispatches the utterance without blocking the frame loop.
package announce

import (
	"fmt"
	"time"
)

// DefaultCooldown is the minimum time between spoken announcements.
const DefaultCooldown = 1500 * time.Millisecond

// Debouncer suppresses repeat and rapid-fire announcements. Its state
// is exactly the last count actually spoken and when it was spoken; a
// suppressed count never updates either field, so after a cooldown the
// comparison is still against what the user last heard.
type Debouncer struct {
	cooldown  time.Duration
	announced bool
	lastCount int
	lastTime  time.Time
}

// NewDebouncer creates a Debouncer with the given cooldown. A zero or
// negative cooldown falls back to DefaultCooldown.
func NewDebouncer(cooldown time.Duration) *Debouncer {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Debouncer{cooldown: cooldown}
}

// Observe reports whether the count should be announced at time now,
// and records it as spoken if so.
func (d *Debouncer) Observe(count int, now time.Time) bool {
	if d.announced {
		if count == d.lastCount {
			return false
		}
		if now.Sub(d.lastTime) < d.cooldown {
			// Suppressed. lastCount stays at the value last spoken.
			return false
		}
	}

	d.announced = true
	d.lastCount = count
	d.lastTime = now
	return true
}

// Phrase renders the spoken text for a finger count, with singular
// grammar for one and "zero" spelled out.
func Phrase(count int) string {
	switch count {
	case 0:
		return "You are holding up zero fingers"
	case 1:
		return "You are holding up 1 finger"
	default:
		return fmt.Sprintf("You are holding up %d fingers", count)
	}
}
