package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mlindgren/cardbox/internal/logger"
	"github.com/mlindgren/cardbox/internal/models"
	"github.com/mlindgren/cardbox/internal/repository"
)

type historyRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository implementation.
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Append(ctx context.Context, rec models.HistoryRecord) error {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("appending history record: card=%s/%s outcome=%s %d->%d",
		rec.CardFront, rec.CardBack, rec.Outcome, rec.PreviousBucket, rec.NewBucket)

	query, args, err := sq.Insert("review_history").
		Columns("id", "card_front", "card_back", "outcome", "previous_bucket", "new_bucket", "reviewed_at").
		Values(rec.ID.String(), rec.CardFront, rec.CardBack, rec.Outcome.String(), rec.PreviousBucket, rec.NewBucket, rec.ReviewedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to append history record: %v", err)
		return err
	}
	return nil
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")

	builder := sq.Select("id", "card_front", "card_back", "outcome", "previous_bucket", "new_bucket", "reviewed_at").
		From("review_history").
		OrderBy("reviewed_at ASC", "id ASC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query history: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.HistoryRecord
	for rows.Next() {
		var rec models.HistoryRecord
		var id, outcome string
		if err := rows.Scan(&id, &rec.CardFront, &rec.CardBack, &outcome, &rec.PreviousBucket, &rec.NewBucket, &rec.ReviewedAt); err != nil {
			log.Error("failed to scan history row: %v", err)
			return nil, err
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse history id %q: %w", id, err)
		}
		rec.Outcome, err = models.ParseOutcome(outcome)
		if err != nil {
			return nil, fmt.Errorf("history record %s: %w", id, err)
		}
		records = append(records, rec)
	}
	log.Debug("loaded %d history records", len(records))
	return records, rows.Err()
}
