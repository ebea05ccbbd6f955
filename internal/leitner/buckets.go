// Package leitner implements bucket-based spaced repetition scheduling.
//
// Cards live in numbered buckets. Bucket 0 holds new and recently missed
// cards and is practiced every day; a card in bucket i is practiced every
// i+1 days. Review outcomes move cards between buckets: a wrong answer
// drops the card to bucket 0, a hard answer promotes it one bucket, an
// easy answer promotes it two.
//
// The package is pure computation over caller-supplied state. It performs
// no I/O, holds no locks, and assumes a single writer; the hosting layer
// is responsible for serializing concurrent reviews.
package leitner

import "github.com/mlindgren/cardbox/internal/models"

// CardSet is a set of cards keyed by content identity. Two cards with the
// same front and back collapse to a single entry, which is what keeps the
// one-bucket-per-card invariant structural rather than enforced by scans.
type CardSet map[models.CardKey]models.Card

// NewCardSet builds a set from the given cards.
func NewCardSet(cards ...models.Card) CardSet {
	s := make(CardSet, len(cards))
	for _, c := range cards {
		s.Add(c)
	}
	return s
}

// Add inserts a card into the set.
func (s CardSet) Add(c models.Card) {
	s[c.Key()] = c
}

// Remove deletes a card from the set by content identity.
func (s CardSet) Remove(c models.Card) {
	delete(s, c.Key())
}

// Contains reports whether a content-equal card is in the set.
func (s CardSet) Contains(c models.Card) bool {
	_, ok := s[c.Key()]
	return ok
}

// Cards returns the set's members as a slice, in map order.
func (s CardSet) Cards() []models.Card {
	out := make([]models.Card, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	return out
}

// BucketMap is the canonical, sparse bucket store: bucket index to the set
// of cards currently in that bucket. Absent indices mean empty buckets, so
// arbitrarily high bucket numbers cost nothing until a card reaches them.
type BucketMap map[int]CardSet

// NewBucketMap returns an empty bucket store.
func NewBucketMap() BucketMap {
	return make(BucketMap)
}

// AddCard inserts a new card into bucket 0. It reports false without
// modifying the store when a content-equal card is already present in any
// bucket, preserving the one-bucket-per-card invariant.
func (b BucketMap) AddCard(c models.Card) bool {
	if _, _, ok := b.FindCardBucket(c); ok {
		return false
	}
	set, ok := b[0]
	if !ok {
		set = make(CardSet)
		b[0] = set
	}
	set.Add(c)
	return true
}

// FindCard scans all buckets for a card with the given front and back.
func (b BucketMap) FindCard(front, back string) (models.Card, bool) {
	key := models.CardKey{Front: front, Back: back}
	for _, set := range b {
		if c, ok := set[key]; ok {
			return c, true
		}
	}
	return models.Card{}, false
}

// FindCardBucket scans all buckets for a content-equal card and returns
// the stored card together with its bucket index.
func (b BucketMap) FindCardBucket(c models.Card) (models.Card, int, bool) {
	for i, set := range b {
		if stored, ok := set[c.Key()]; ok {
			return stored, i, true
		}
	}
	return models.Card{}, 0, false
}

// MaxBucket returns the highest bucket index holding at least one card,
// or -1 when the store is empty.
func (b BucketMap) MaxBucket() int {
	max := -1
	for i, set := range b {
		if len(set) > 0 && i > max {
			max = i
		}
	}
	return max
}

// CountCards returns the total number of cards across all buckets.
func (b BucketMap) CountCards() int {
	n := 0
	for _, set := range b {
		n += len(set)
	}
	return n
}

// Clone returns a deep copy of the store. Card values are copied as-is;
// they are immutable by convention.
func (b BucketMap) Clone() BucketMap {
	out := make(BucketMap, len(b))
	for i, set := range b {
		cp := make(CardSet, len(set))
		for k, c := range set {
			cp[k] = c
		}
		out[i] = cp
	}
	return out
}

// ToBucketSets converts the sparse map into the dense array form consumed
// by Practice, with empty sets filling the gaps. The result is O(max
// bucket index) in length regardless of card count, which is a known
// scaling cost when bucket indices grow large; PracticeMap iterates the
// sparse form directly and avoids it.
func ToBucketSets(b BucketMap) []CardSet {
	max := b.MaxBucket()
	out := make([]CardSet, max+1)
	for i := range out {
		out[i] = make(CardSet)
	}
	for i, set := range b {
		if i > max {
			continue
		}
		for k, c := range set {
			out[i][k] = c
		}
	}
	return out
}
