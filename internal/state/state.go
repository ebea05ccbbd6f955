// Package state holds the mutable study state shared by the serving layer:
// the bucket store, the day counter, and the in-memory history log.
//
// State does no locking of its own. It is a single-writer structure; the
// study service serializes access to it.
package state

import (
	"github.com/mlindgren/cardbox/internal/leitner"
	"github.com/mlindgren/cardbox/internal/models"
)

// State is the process-wide study state, constructed once at startup by
// the host and passed to the service layer.
type State struct {
	Buckets leitner.BucketMap
	Day     int
	History []models.HistoryRecord
}

// New returns an empty state at day 0.
func New() *State {
	return &State{Buckets: leitner.NewBucketMap()}
}

// Restore builds a state from host-provided persistence.
func Restore(buckets leitner.BucketMap, day int, history []models.HistoryRecord) *State {
	if buckets == nil {
		buckets = leitner.NewBucketMap()
	}
	if day < 0 {
		day = 0
	}
	return &State{Buckets: buckets, Day: day, History: history}
}

// AdvanceDay increments the day counter and returns the new day. The day
// counter never decreases.
func (s *State) AdvanceDay() int {
	s.Day++
	return s.Day
}

// AppendHistory adds a record to the in-memory log. Records are immutable
// once appended; order is insertion order.
func (s *State) AppendHistory(rec models.HistoryRecord) {
	s.History = append(s.History, rec)
}

// RecentHistory returns up to limit records, newest last. A non-positive
// limit returns the whole log.
func (s *State) RecentHistory(limit int) []models.HistoryRecord {
	if limit <= 0 || limit >= len(s.History) {
		out := make([]models.HistoryRecord, len(s.History))
		copy(out, s.History)
		return out
	}
	out := make([]models.HistoryRecord, limit)
	copy(out, s.History[len(s.History)-limit:])
	return out
}

// Reset clears all state back to an empty day-0 store. Intended for tests
// and the host's explicit reset action.
func (s *State) Reset() {
	s.Buckets = leitner.NewBucketMap()
	s.Day = 0
	s.History = nil
}
