package stats

import (
	"testing"

	"github.com/ayusman/mudra/internal/gesture"
)

func TestTracker_MostCommon(t *testing.T) {
	tr := NewTracker()
	tr.Record(gesture.Fist)
	tr.Record(gesture.Fist)
	tr.Record(gesture.OpenPalm)

	label, count, ok := tr.MostCommon()
	if !ok {
		t.Fatal("MostCommon() ok = false after observations")
	}
	if label != gesture.Fist || count != 2 {
		t.Errorf("MostCommon() = %q x%d, want %q x2", label, count, gesture.Fist)
	}
	if tr.Total() != 3 {
		t.Errorf("Total() = %d, want 3", tr.Total())
	}
}

func TestTracker_TieBreaksToFirstObserved(t *testing.T) {
	tr := NewTracker()
	tr.Record(gesture.PeaceSign)
	tr.Record(gesture.Fist)
	tr.Record(gesture.Fist)
	tr.Record(gesture.PeaceSign)

	label, count, ok := tr.MostCommon()
	if !ok {
		t.Fatal("MostCommon() ok = false")
	}
	if label != gesture.PeaceSign || count != 2 {
		t.Errorf("MostCommon() = %q x%d, want first-observed %q x2", label, count, gesture.PeaceSign)
	}
}

func TestTracker_Empty(t *testing.T) {
	tr := NewTracker()

	if _, _, ok := tr.MostCommon(); ok {
		t.Error("MostCommon() ok = true before any observation")
	}
	if tr.Total() != 0 {
		t.Errorf("Total() = %d, want 0", tr.Total())
	}

	snap := tr.Snapshot()
	if snap.HasCommon || snap.Total != 0 {
		t.Errorf("Snapshot() = %+v, want empty", snap)
	}
}

func TestTracker_SessionID(t *testing.T) {
	a := NewTracker()
	b := NewTracker()

	if a.SessionID() == "" {
		t.Error("SessionID() is empty")
	}
	if a.SessionID() == b.SessionID() {
		t.Error("two trackers share a session id")
	}
}

func TestTracker_Snapshot(t *testing.T) {
	tr := NewTracker()
	tr.Record(gesture.Pointing)

	snap := tr.Snapshot()
	if snap.Total != 1 || !snap.HasCommon || snap.MostCommon != gesture.Pointing || snap.CommonCount != 1 {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if snap.Elapsed < 0 {
		t.Errorf("Elapsed = %s, want non-negative", snap.Elapsed)
	}
}
