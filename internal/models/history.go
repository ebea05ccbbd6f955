package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is one entry in the append-only review log. Records are
// immutable once appended and are never read back by the scheduler; they
// exist for auditing and progress trending.
type HistoryRecord struct {
	ID             uuid.UUID `json:"id"`
	CardFront      string    `json:"card_front"`
	CardBack       string    `json:"card_back"`
	Outcome        Outcome   `json:"outcome"`
	PreviousBucket int       `json:"previous_bucket"`
	NewBucket      int       `json:"new_bucket"`
	ReviewedAt     time.Time `json:"reviewed_at"`
}

// NewHistoryRecord stamps a fresh record for a completed review.
func NewHistoryRecord(card Card, outcome Outcome, prevBucket, newBucket int) HistoryRecord {
	return HistoryRecord{
		ID:             uuid.New(),
		CardFront:      card.Front,
		CardBack:       card.Back,
		Outcome:        outcome,
		PreviousBucket: prevBucket,
		NewBucket:      newBucket,
		ReviewedAt:     time.Now().UTC(),
	}
}
