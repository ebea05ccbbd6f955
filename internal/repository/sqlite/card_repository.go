package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mlindgren/cardbox/internal/leitner"
	"github.com/mlindgren/cardbox/internal/logger"
	"github.com/mlindgren/cardbox/internal/models"
	"github.com/mlindgren/cardbox/internal/repository"
)

type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository implementation.
func NewCardRepository(db *sql.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Insert(ctx context.Context, c models.Card, bucket int) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("inserting card: %s (bucket %d)", c.Key(), bucket)

	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	query, args, err := sq.Insert("cards").
		Columns("front", "back", "hint", "tags", "bucket").
		Values(c.Front, c.Back, c.Hint, string(tags), bucket).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert card: %v", err)
		return err
	}
	return nil
}

func (r *cardRepository) UpdateBucket(ctx context.Context, key models.CardKey, bucket int) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("updating card bucket: %s -> %d", key, bucket)

	query, args, err := sq.Update("cards").
		Set("bucket", bucket).
		Where(sq.Eq{"front": key.Front, "back": key.Back}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update card bucket: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Warn("bucket update matched no rows: %s", key)
	}
	return nil
}

func (r *cardRepository) LoadBuckets(ctx context.Context) (leitner.BucketMap, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("loading bucket snapshot")

	query, args, err := sq.Select("front", "back", "hint", "tags", "bucket").
		From("cards").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	buckets := leitner.NewBucketMap()
	for rows.Next() {
		var c models.Card
		var tags string
		var bucket int
		if err := rows.Scan(&c.Front, &c.Back, &c.Hint, &tags, &bucket); err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags for %s: %w", c.Key(), err)
		}
		set, ok := buckets[bucket]
		if !ok {
			set = leitner.NewCardSet()
			buckets[bucket] = set
		}
		set.Add(c)
	}
	log.Debug("loaded %d cards into %d buckets", buckets.CountCards(), len(buckets))
	return buckets, rows.Err()
}

func (r *cardRepository) Count(ctx context.Context) (int, error) {
	query, args, err := sq.Select("COUNT(*)").From("cards").ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
