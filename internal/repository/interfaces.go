package repository

import (
	"context"

	"github.com/mlindgren/cardbox/internal/leitner"
	"github.com/mlindgren/cardbox/internal/models"
)

// CardRepository persists card bucket membership. It is a dumb snapshot of
// the in-memory bucket store, restored once at startup.
type CardRepository interface {
	Insert(ctx context.Context, card models.Card, bucket int) error
	UpdateBucket(ctx context.Context, key models.CardKey, bucket int) error
	LoadBuckets(ctx context.Context) (leitner.BucketMap, error)
	Count(ctx context.Context) (int, error)
}

// HistoryRepository persists the append-only review log.
type HistoryRepository interface {
	Append(ctx context.Context, rec models.HistoryRecord) error
	List(ctx context.Context, limit int) ([]models.HistoryRecord, error)
}

// MetaRepository persists the day counter.
type MetaRepository interface {
	Day(ctx context.Context) (int, error)
	SetDay(ctx context.Context, day int) error
}
