package leitner

import "github.com/mlindgren/cardbox/internal/models"

// LearningThreshold is the bucket index at or above which a card counts as
// learned. Display-only: scheduling never consults it.
const LearningThreshold = 3

// ComputeProgress derives aggregate statistics from the bucket store.
// An empty store yields zero totals and a completion percentage of 0.
func ComputeProgress(b BucketMap) models.ProgressStats {
	stats := models.ProgressStats{
		CardsByBucket:     make(map[int]int),
		LearningThreshold: LearningThreshold,
	}
	for i, set := range b {
		if len(set) == 0 {
			continue
		}
		stats.CardsByBucket[i] = len(set)
		stats.TotalCards += len(set)
		if i >= LearningThreshold {
			stats.CardsLearned += len(set)
		}
	}
	if stats.TotalCards > 0 {
		stats.CompletionPercentage = float64(stats.CardsLearned) / float64(stats.TotalCards) * 100
	}
	return stats
}
