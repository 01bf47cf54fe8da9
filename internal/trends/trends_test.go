package trends

import (
	"fmt"
	"testing"
	"time"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	data map[string][]byte
	fail bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) GetKV(key string) ([]byte, error) {
	if s.fail {
		return nil, fmt.Errorf("store unavailable")
	}
	return s.data[key], nil
}

func (s *memStore) SetKV(key string, value []byte) error {
	if s.fail {
		return fmt.Errorf("store unavailable")
	}
	s.data[key] = value
	return nil
}

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecordAndHistory(t *testing.T) {
	store := newMemStore()
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(store, clockAt(day))

	if err := tracker.Record("quantum", 3); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	history, err := tracker.History("quantum")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 || history[0].Date != "2026-03-10" || history[0].Count != 3 {
		t.Errorf("Unexpected history: %+v", history)
	}
}

func TestRecordSameDayReplaces(t *testing.T) {
	store := newMemStore()
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(store, clockAt(day))

	if err := tracker.Record("quantum", 2); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := tracker.Record("quantum", 4); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	history, _ := tracker.History("quantum")
	if len(history) != 1 {
		t.Fatalf("Expected same-day replacement, got %d entries", len(history))
	}
	if history[0].Count != 4 {
		t.Errorf("Expected replaced count 4, got %d", history[0].Count)
	}
}

func TestRecordCapsHistory(t *testing.T) {
	store := newMemStore()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		tracker := NewTracker(store, clockAt(start.AddDate(0, 0, i)))
		if err := tracker.Record("quantum", 2); err != nil {
			t.Fatalf("Record failed on day %d: %v", i, err)
		}
	}

	tracker := NewTracker(store, clockAt(start.AddDate(0, 0, 20)))
	history, _ := tracker.History("quantum")
	if len(history) != maxHistoryEntries {
		t.Errorf("Expected history capped at %d, got %d", maxHistoryEntries, len(history))
	}
	// Oldest surviving entry is day 20-14=6.
	if history[0].Date != "2026-03-07" {
		t.Errorf("Expected oldest entry 2026-03-07, got %s", history[0].Date)
	}
}

func TestIsTrendingConsecutiveStreak(t *testing.T) {
	store := newMemStore()
	start := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		tracker := NewTracker(store, clockAt(start.AddDate(0, 0, i)))
		if err := tracker.Record("quantum", 2); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	tracker := NewTracker(store, clockAt(start.AddDate(0, 0, 3)))
	if !tracker.IsTrending("quantum") {
		t.Error("Expected trending after 3 consecutive days")
	}
}

func TestIsTrendingGapBreaksStreak(t *testing.T) {
	store := newMemStore()
	start := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

	// Days 0, 1 and 3: the gap resets the streak.
	for _, offset := range []int{0, 1, 3} {
		tracker := NewTracker(store, clockAt(start.AddDate(0, 0, offset)))
		if err := tracker.Record("quantum", 2); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	tracker := NewTracker(store, clockAt(start.AddDate(0, 0, 4)))
	if tracker.IsTrending("quantum") {
		t.Error("Expected not trending with a gap in coverage")
	}
}

func TestIsTrendingSpike(t *testing.T) {
	store := newMemStore()
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(store, clockAt(day))

	if err := tracker.Record("quantum", spikeThreshold+1); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if !tracker.IsTrending("quantum") {
		t.Error("Expected trending on a single-day spike")
	}
}

func TestCorruptHistoryDiscarded(t *testing.T) {
	store := newMemStore()
	store.data[keyPrefix+"quantum"] = []byte("not json")
	tracker := NewTracker(store, nil)

	history, err := tracker.History("quantum")
	if err != nil {
		t.Fatalf("Expected corrupt history to be discarded, got error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected empty history, got %+v", history)
	}
	if tracker.IsTrending("quantum") {
		t.Error("Corrupt history must not trend")
	}
}

func TestNilStoreIsNoOp(t *testing.T) {
	tracker := NewTracker(nil, nil)

	if err := tracker.Record("quantum", 3); err != nil {
		t.Errorf("Expected nil store Record to be a no-op, got %v", err)
	}
	if tracker.IsTrending("quantum") {
		t.Error("Nil store must never trend")
	}
}

func TestStoreFailureSurfacedByRecord(t *testing.T) {
	store := newMemStore()
	store.fail = true
	tracker := NewTracker(store, nil)

	if err := tracker.Record("quantum", 3); err == nil {
		t.Error("Expected Record to surface the store error to its caller")
	}
	// Reads degrade to empty rather than erroring the indicator.
	if tracker.IsTrending("quantum") {
		t.Error("Failing store must not trend")
	}
}
