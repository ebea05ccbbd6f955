package models

// ProgressStats are aggregate statistics derived from the bucket store.
type ProgressStats struct {
	TotalCards           int         `json:"total_cards"`
	CardsLearned         int         `json:"cards_learned"`
	CompletionPercentage float64     `json:"completion_percentage"`
	CardsByBucket        map[int]int `json:"cards_by_bucket"`
	LearningThreshold    int         `json:"learning_threshold"`
}
