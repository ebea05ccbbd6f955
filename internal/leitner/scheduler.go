package leitner

import (
	"errors"
	"fmt"

	"github.com/mlindgren/cardbox/internal/models"
)

// ErrCardNotFound is returned by Update when the reviewed card is not
// present in any bucket. Check with errors.Is.
var ErrCardNotFound = errors.New("leitner: card not in any bucket")

// dueOn reports whether a card in the given bucket is due on the given
// day: day mod (bucket+1) == 0. Bucket 0 cards are due every day.
func dueOn(bucket, day int) bool {
	return day%(bucket+1) == 0
}

// Practice returns the set of cards due for review on the given day, where
// position i of buckets holds the cards in bucket i. Day 0 is the first
// day; day must be non-negative. The input is not modified.
func Practice(buckets []CardSet, day int) CardSet {
	due := make(CardSet)
	for i, set := range buckets {
		if !dueOn(i, day) {
			continue
		}
		for k, c := range set {
			due[k] = c
		}
	}
	return due
}

// PracticeMap is Practice over the sparse map form, skipping the dense
// adapter. Behavior is identical to Practice(ToBucketSets(b), day).
func PracticeMap(b BucketMap, day int) CardSet {
	due := make(CardSet)
	for i, set := range b {
		if !dueOn(i, day) {
			continue
		}
		for k, c := range set {
			due[k] = c
		}
	}
	return due
}

// nextBucket computes where a card in bucket b lands after an outcome.
func nextBucket(b int, outcome models.Outcome) int {
	next := b
	switch outcome {
	case models.Wrong:
		next = 0
	case models.Hard:
		next = b + 1
	case models.Easy:
		next = b + 2
	}
	if next < 0 {
		next = 0
	}
	return next
}

// Update moves a card between buckets according to the review outcome:
// wrong sends it to bucket 0, hard promotes it one bucket, easy promotes
// it two. There is no upper bound; cards can be promoted indefinitely.
//
// The store is mutated in place and returned; callers should use the
// returned map as the authoritative state. When the card is not found or
// the outcome is invalid, the store is left untouched and an error is
// returned.
func Update(b BucketMap, card models.Card, outcome models.Outcome) (BucketMap, error) {
	if !outcome.IsValid() {
		return b, fmt.Errorf("%w: %d", models.ErrInvalidOutcome, int(outcome))
	}
	stored, cur, ok := b.FindCardBucket(card)
	if !ok {
		return b, fmt.Errorf("%w: %s", ErrCardNotFound, card.Key())
	}

	b[cur].Remove(stored)
	next := nextBucket(cur, outcome)
	set, ok := b[next]
	if !ok {
		set = make(CardSet)
		b[next] = set
	}
	set.Add(stored)
	return b, nil
}

// GetHint returns the card's stored hint verbatim, which may be empty.
// No guarantee is made about the hint's usefulness.
func GetHint(card models.Card) string {
	return card.Hint
}
