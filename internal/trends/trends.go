// Package trends keeps a rolling per-theme history of cross-source coverage
// counts. The history only drives a "trending" indicator in the rendered
// digest; it is advisory telemetry, and every storage failure degrades to an
// empty history rather than an error surfaced to scoring.
package trends

import (
	"encoding/json"
	"fmt"
	"time"
)

// Store is the minimal key-value interface the tracker persists through.
// ErrNotFound-style misses are signalled with a nil value and nil error.
type Store interface {
	GetKV(key string) ([]byte, error)
	SetKV(key string, value []byte) error
}

// Entry is one day of coverage for a theme.
type Entry struct {
	Date  string `json:"date"` // calendar date, 2006-01-02
	Count int    `json:"count"`
}

const (
	// History is capped at the most recent entries per theme.
	maxHistoryEntries = 14

	// A theme is trending after this many consecutive daily entries, or
	// whenever a single day's coverage exceeds the spike threshold.
	trendingStreak = 3
	spikeThreshold = 5

	keyPrefix = "trend:"
)

// Tracker records and reads per-theme histories. A nil store is legal and
// turns every operation into a no-op.
type Tracker struct {
	store Store
	now   func() time.Time
}

// NewTracker builds a tracker. now may be nil; tests inject a fixed clock.
func NewTracker(store Store, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, now: now}
}

// Record appends today's source count for a theme, replacing any existing
// entry for the same calendar date and trimming the history to the cap.
func (t *Tracker) Record(theme string, sourceCount int) error {
	if t.store == nil {
		return nil
	}

	history, err := t.History(theme)
	if err != nil {
		return err
	}

	today := t.now().UTC().Format("2006-01-02")
	replaced := false
	for i := range history {
		if history[i].Date == today {
			history[i].Count = sourceCount
			replaced = true
			break
		}
	}
	if !replaced {
		history = append(history, Entry{Date: today, Count: sourceCount})
	}
	if len(history) > maxHistoryEntries {
		history = history[len(history)-maxHistoryEntries:]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("trends: marshal history for %q: %w", theme, err)
	}
	return t.store.SetKV(keyPrefix+theme, data)
}

// History returns the stored entries for a theme, oldest first. Missing or
// unreadable history comes back empty.
func (t *Tracker) History(theme string) ([]Entry, error) {
	if t.store == nil {
		return nil, nil
	}
	data, err := t.store.GetKV(keyPrefix + theme)
	if err != nil {
		return nil, fmt.Errorf("trends: read history for %q: %w", theme, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var history []Entry
	if err := json.Unmarshal(data, &history); err != nil {
		// Corrupt history is discarded, not fatal.
		return nil, nil
	}
	return history, nil
}

// IsTrending reports whether a theme shows sustained or spiking coverage:
// three or more consecutive daily entries ending at the latest entry, or any
// single day above the spike threshold.
func (t *Tracker) IsTrending(theme string) bool {
	history, err := t.History(theme)
	if err != nil || len(history) == 0 {
		return false
	}

	for _, e := range history {
		if e.Count > spikeThreshold {
			return true
		}
	}

	if len(history) < trendingStreak {
		return false
	}
	streak := 1
	for i := len(history) - 1; i > 0; i-- {
		cur, errC := time.Parse("2006-01-02", history[i].Date)
		prev, errP := time.Parse("2006-01-02", history[i-1].Date)
		if errC != nil || errP != nil {
			break
		}
		if cur.Sub(prev) != 24*time.Hour {
			break
		}
		streak++
		if streak >= trendingStreak {
			return true
		}
	}
	return false
}
