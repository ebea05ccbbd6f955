package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/mlindgren/cardbox/internal/logger"
	"github.com/mlindgren/cardbox/internal/repository"
)

const dayKey = "day"

type metaRepository struct {
	db *sql.DB
}

// NewMetaRepository creates a new MetaRepository implementation.
func NewMetaRepository(db *sql.DB) repository.MetaRepository {
	return &metaRepository{db: db}
}

func (r *metaRepository) Day(ctx context.Context) (int, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, dayKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	day, err := strconv.Atoi(value)
	if err != nil || day < 0 {
		logger.FromContext(ctx).Warn("invalid persisted day %q, resetting to 0", value)
		return 0, nil
	}
	return day, nil
}

func (r *metaRepository) SetDay(ctx context.Context, day int) error {
	log := logger.FromContext(ctx).WithPrefix("meta_repo")
	log.Debug("persisting day counter: %d", day)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO meta (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value
`, dayKey, strconv.Itoa(day))
	if err != nil {
		log.Error("failed to persist day counter: %v", err)
	}
	return err
}
