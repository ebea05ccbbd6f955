package leitner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindgren/cardbox/internal/leitner"
	"github.com/mlindgren/cardbox/internal/models"
)

func card(front, back string) models.Card {
	return models.Card{Front: front, Back: back}
}

func TestPractice_EmptyStore(t *testing.T) {
	due := leitner.Practice(nil, 0)
	assert.Empty(t, due, "empty store should yield an empty due set")

	due = leitner.Practice([]leitner.CardSet{}, 5)
	assert.Empty(t, due)
}

func TestPractice_BucketZeroDueEveryDay(t *testing.T) {
	x := card("der Hund", "the dog")
	buckets := []leitner.CardSet{leitner.NewCardSet(x)}

	for day := 0; day < 10; day++ {
		due := leitner.Practice(buckets, day)
		assert.True(t, due.Contains(x), "bucket 0 card should be due on day %d", day)
	}
}

func TestPractice_DayZeroIncludesEverything(t *testing.T) {
	a := card("a", "1")
	b := card("b", "2")
	c := card("c", "3")
	buckets := []leitner.CardSet{
		leitner.NewCardSet(a),
		leitner.NewCardSet(b),
		leitner.NewCardSet(c),
	}

	due := leitner.Practice(buckets, 0)
	assert.Len(t, due, 3, "day 0 is divisible by every interval")
}

func TestPractice_BucketOneSpacing(t *testing.T) {
	x := card("la mer", "the sea")
	buckets := []leitner.CardSet{
		make(leitner.CardSet),
		leitner.NewCardSet(x),
	}

	assert.False(t, leitner.Practice(buckets, 1).Contains(x), "bucket 1 card is not due on day 1")
	assert.True(t, leitner.Practice(buckets, 2).Contains(x), "bucket 1 card is due on day 2")
}

func TestPractice_SpacingRule(t *testing.T) {
	tests := []struct {
		name   string
		bucket int
		day    int
		due    bool
	}{
		{"bucket 2 on day 3", 2, 3, true},
		{"bucket 2 on day 4", 2, 4, false},
		{"bucket 2 on day 6", 2, 6, true},
		{"bucket 4 on day 5", 4, 5, true},
		{"bucket 4 on day 9", 4, 9, false},
		{"bucket 4 on day 10", 4, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := card("front", "back")
			buckets := make([]leitner.CardSet, tt.bucket+1)
			for i := range buckets {
				buckets[i] = make(leitner.CardSet)
			}
			buckets[tt.bucket].Add(x)

			due := leitner.Practice(buckets, tt.day)
			assert.Equal(t, tt.due, due.Contains(x))
		})
	}
}

func TestPractice_DoesNotMutateInput(t *testing.T) {
	x := card("q", "a")
	buckets := []leitner.CardSet{leitner.NewCardSet(x)}

	first := leitner.Practice(buckets, 0)
	second := leitner.Practice(buckets, 0)

	assert.Equal(t, first, second, "repeated calls with the same input must agree")
	assert.Len(t, buckets[0], 1, "input buckets must be untouched")
}

func TestPracticeMap_MatchesDenseForm(t *testing.T) {
	b := leitner.NewBucketMap()
	b.AddCard(card("a", "1"))
	b.AddCard(card("b", "2"))
	_, err := leitner.Update(b, card("b", "2"), models.Easy)
	require.NoError(t, err)

	for day := 0; day < 8; day++ {
		dense := leitner.Practice(leitner.ToBucketSets(b), day)
		sparse := leitner.PracticeMap(b, day)
		assert.Equal(t, dense, sparse, "day %d", day)
	}
}

func TestUpdate_WrongDemotesToZero(t *testing.T) {
	tests := []struct {
		name   string
		bucket int
	}{
		{"from bucket 0", 0},
		{"from bucket 1", 1},
		{"from bucket 5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := card("front", "back")
			b := leitner.BucketMap{tt.bucket: leitner.NewCardSet(x)}

			b, err := leitner.Update(b, x, models.Wrong)
			require.NoError(t, err)

			_, idx, ok := b.FindCardBucket(x)
			require.True(t, ok)
			assert.Equal(t, 0, idx, "wrong answer always lands in bucket 0")
		})
	}
}

func TestUpdate_HardPromotesByOne(t *testing.T) {
	x := card("front", "back")
	b := leitner.BucketMap{2: leitner.NewCardSet(x)}

	b, err := leitner.Update(b, x, models.Hard)
	require.NoError(t, err)

	_, idx, ok := b.FindCardBucket(x)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestUpdate_EasyPromotesByTwo(t *testing.T) {
	x := card("front", "back")
	b := leitner.BucketMap{2: leitner.NewCardSet(x)}

	b, err := leitner.Update(b, x, models.Easy)
	require.NoError(t, err)

	_, idx, ok := b.FindCardBucket(x)
	require.True(t, ok)
	assert.Equal(t, 4, idx, "easy from bucket 2 should land in bucket 4")
}

func TestUpdate_CreatesTargetBucket(t *testing.T) {
	x := card("front", "back")
	b := leitner.BucketMap{7: leitner.NewCardSet(x)}

	b, err := leitner.Update(b, x, models.Easy)
	require.NoError(t, err)

	_, idx, ok := b.FindCardBucket(x)
	require.True(t, ok)
	assert.Equal(t, 9, idx, "bucket 9 should be created on demand")
}

func TestUpdate_CardStaysInExactlyOneBucket(t *testing.T) {
	x := card("front", "back")
	y := card("other", "card")
	b := leitner.NewBucketMap()
	b.AddCard(x)
	b.AddCard(y)

	outcomes := []models.Outcome{models.Easy, models.Hard, models.Wrong, models.Easy, models.Easy, models.Wrong}
	for _, o := range outcomes {
		var err error
		b, err = leitner.Update(b, x, o)
		require.NoError(t, err)

		found := 0
		for _, set := range b {
			if set.Contains(x) {
				found++
			}
		}
		assert.Equal(t, 1, found, "card must be in exactly one bucket after %s", o)
	}
	assert.Equal(t, 2, b.CountCards())
}

func TestUpdate_UnknownCard(t *testing.T) {
	b := leitner.NewBucketMap()
	b.AddCard(card("known", "card"))

	_, err := leitner.Update(b, card("missing", "card"), models.Easy)
	require.Error(t, err)
	assert.ErrorIs(t, err, leitner.ErrCardNotFound)

	// No partial mutation.
	assert.Equal(t, 1, b.CountCards())
	_, idx, ok := b.FindCardBucket(card("known", "card"))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestUpdate_InvalidOutcome(t *testing.T) {
	x := card("front", "back")
	b := leitner.BucketMap{3: leitner.NewCardSet(x)}

	_, err := leitner.Update(b, x, models.Outcome(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidOutcome)

	_, idx, ok := b.FindCardBucket(x)
	require.True(t, ok)
	assert.Equal(t, 3, idx, "store must be untouched on invalid outcome")
}

func TestUpdate_LookupByContent(t *testing.T) {
	stored := models.Card{Front: "front", Back: "back", Hint: "a hint", Tags: []string{"t"}}
	b := leitner.BucketMap{1: leitner.NewCardSet(stored)}

	// A bare front/back pair identifies the same card.
	b, err := leitner.Update(b, card("front", "back"), models.Hard)
	require.NoError(t, err)

	got, idx, ok := b.FindCardBucket(card("front", "back"))
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "a hint", got.Hint, "stored card value survives the move")
}

func TestGetHint(t *testing.T) {
	assert.Equal(t, "starts with b", leitner.GetHint(models.Card{Front: "f", Back: "b", Hint: "starts with b"}))
	assert.Equal(t, "", leitner.GetHint(card("f", "b")), "empty hint is returned verbatim")
}
