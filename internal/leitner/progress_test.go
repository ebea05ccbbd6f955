package leitner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlindgren/cardbox/internal/leitner"
)

func TestComputeProgress_EmptyStore(t *testing.T) {
	stats := leitner.ComputeProgress(leitner.NewBucketMap())

	assert.Equal(t, 0, stats.TotalCards)
	assert.Equal(t, 0, stats.CardsLearned)
	assert.Equal(t, 0.0, stats.CompletionPercentage, "no cards must not divide by zero")
	assert.Empty(t, stats.CardsByBucket)
	assert.Equal(t, leitner.LearningThreshold, stats.LearningThreshold)
}

func TestComputeProgress_MixedBuckets(t *testing.T) {
	b := leitner.BucketMap{
		0: leitner.NewCardSet(card("a", "1"), card("b", "2")),
		3: leitner.NewCardSet(card("c", "3")),
	}

	stats := leitner.ComputeProgress(b)

	assert.Equal(t, 3, stats.TotalCards)
	assert.Equal(t, 1, stats.CardsLearned, "only the bucket 3 card is at the threshold")
	assert.InDelta(t, 33.333, stats.CompletionPercentage, 0.01)
	assert.Equal(t, map[int]int{0: 2, 3: 1}, stats.CardsByBucket)
}

func TestComputeProgress_AllLearned(t *testing.T) {
	b := leitner.BucketMap{
		3: leitner.NewCardSet(card("a", "1")),
		7: leitner.NewCardSet(card("b", "2")),
	}

	stats := leitner.ComputeProgress(b)

	assert.Equal(t, 2, stats.CardsLearned)
	assert.Equal(t, 100.0, stats.CompletionPercentage)
}

func TestComputeProgress_SkipsEmptyBuckets(t *testing.T) {
	b := leitner.BucketMap{
		0: leitner.NewCardSet(card("a", "1")),
		4: make(leitner.CardSet),
	}

	stats := leitner.ComputeProgress(b)

	assert.Equal(t, 1, stats.TotalCards)
	assert.NotContains(t, stats.CardsByBucket, 4, "empty buckets are not reported")
}

func TestComputeProgress_PureRead(t *testing.T) {
	b := leitner.BucketMap{
		1: leitner.NewCardSet(card("a", "1")),
	}

	first := leitner.ComputeProgress(b)
	second := leitner.ComputeProgress(b)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, b.CountCards())
}
