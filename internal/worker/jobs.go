package worker

import (
	"context"
	"errors"

	"github.com/mlindgren/cardbox/internal/deck"
	apperrors "github.com/mlindgren/cardbox/internal/errors"
	"github.com/mlindgren/cardbox/internal/logger"
	"github.com/mlindgren/cardbox/internal/services"
)

// ImportDeckJob parses a deck file and loads its cards into bucket 0.
// Cards that already exist are skipped.
type ImportDeckJob struct {
	Study services.StudyService
	Path  string
}

func (j *ImportDeckJob) Name() string { return "import_deck" }

func (j *ImportDeckJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("path", j.Path)
	log.Info("starting deck import")

	cards, err := deck.ParseFile(j.Path)
	if err != nil {
		log.Error("failed to parse deck: %v", err)
		return err
	}

	created, skipped := 0, 0
	for _, c := range cards {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		_, err := j.Study.CreateCard(ctx, c.Front, c.Back, c.Hint, c.Tags)
		switch {
		case err == nil:
			created++
		case isDuplicate(err):
			skipped++
		default:
			log.Error("failed to create card %q: %v", c.Front, err)
			return err
		}
	}

	log.Info("deck import finished: %d created, %d skipped", created, skipped)
	return nil
}

// isDuplicate reports whether the error is the validation failure for an
// already-known card.
func isDuplicate(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Code == apperrors.ErrCodeValidation
}
