package services

import (
	"context"
	"sort"
	"sync"

	"github.com/mlindgren/cardbox/internal/errors"
	"github.com/mlindgren/cardbox/internal/leitner"
	"github.com/mlindgren/cardbox/internal/logger"
	"github.com/mlindgren/cardbox/internal/models"
	"github.com/mlindgren/cardbox/internal/repository"
	"github.com/mlindgren/cardbox/internal/state"
)

// StudyService is the serving-layer facade over the scheduling core. It
// owns the single-writer discipline: every operation takes the service
// mutex, so the lock-free core only ever sees serialized access.
type StudyService interface {
	Practice(ctx context.Context) (day int, due []models.Card, err error)
	SubmitReview(ctx context.Context, front, back string, outcome models.Outcome) (models.HistoryRecord, error)
	Progress(ctx context.Context) models.ProgressStats
	Hint(ctx context.Context, front, back string) (string, error)
	AdvanceDay(ctx context.Context) (int, error)
	CreateCard(ctx context.Context, front, back, hint string, tags []string) (models.Card, error)
	History(ctx context.Context, limit int) []models.HistoryRecord
}

type studyService struct {
	mu      sync.Mutex
	state   *state.State
	cards   repository.CardRepository
	history repository.HistoryRepository
	meta    repository.MetaRepository
}

// NewStudyService creates a StudyService over the given state container
// and persistence collaborators.
func NewStudyService(st *state.State, cards repository.CardRepository, history repository.HistoryRepository, meta repository.MetaRepository) StudyService {
	return &studyService{state: st, cards: cards, history: history, meta: meta}
}

func (s *studyService) Practice(ctx context.Context) (int, []models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)
	day := s.state.Day
	due := leitner.PracticeMap(s.state.Buckets, day)

	cards := due.Cards()
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Front != cards[j].Front {
			return cards[i].Front < cards[j].Front
		}
		return cards[i].Back < cards[j].Back
	})

	log.Debug("practice set for day %d: %d cards", day, len(cards))
	return day, cards, nil
}

func (s *studyService) SubmitReview(ctx context.Context, front, back string, outcome models.Outcome) (models.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Debug("reviewing card: front=%q outcome=%s", front, outcome)

	if !outcome.IsValid() {
		return models.HistoryRecord{}, errors.NewValidationError("outcome", "must be one of wrong, hard, easy")
	}

	card, prev, ok := s.state.Buckets.FindCardBucket(models.Card{Front: front, Back: back})
	if !ok {
		return models.HistoryRecord{}, errors.NewNotFoundError("card", models.CardKey{Front: front, Back: back})
	}

	if _, err := leitner.Update(s.state.Buckets, card, outcome); err != nil {
		log.Error("bucket update failed: %v", err)
		return models.HistoryRecord{}, errors.NewInternalError(err)
	}

	_, next, _ := s.state.Buckets.FindCardBucket(card)
	rec := models.NewHistoryRecord(card, outcome, prev, next)
	s.state.AppendHistory(rec)

	// Persistence is a best-effort snapshot; the in-memory store stays
	// authoritative when a write fails.
	if err := s.cards.UpdateBucket(ctx, card.Key(), next); err != nil {
		log.Warn("failed to persist bucket move: %v", err)
	}
	if err := s.history.Append(ctx, rec); err != nil {
		log.Warn("failed to persist history record: %v", err)
	}

	log.Info("card reviewed: %s moved %d -> %d", card.Key(), prev, next)
	return rec, nil
}

func (s *studyService) Progress(ctx context.Context) models.ProgressStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return leitner.ComputeProgress(s.state.Buckets)
}

func (s *studyService) Hint(ctx context.Context, front, back string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.state.Buckets.FindCard(front, back)
	if !ok {
		return "", errors.NewNotFoundError("card", models.CardKey{Front: front, Back: back})
	}
	return leitner.GetHint(card), nil
}

func (s *studyService) AdvanceDay(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := s.state.AdvanceDay()
	if err := s.meta.SetDay(ctx, day); err != nil {
		logger.FromContext(ctx).Warn("failed to persist day counter: %v", err)
	}
	logger.FromContext(ctx).Info("advanced to day %d", day)
	return day, nil
}

func (s *studyService) CreateCard(ctx context.Context, front, back, hint string, tags []string) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := models.NewCard(front, back, hint, tags)
	if err != nil {
		return models.Card{}, errors.NewValidationError("card", err.Error())
	}
	if !s.state.Buckets.AddCard(card) {
		return models.Card{}, errors.NewValidationError("card", "a card with this front and back already exists")
	}

	if err := s.cards.Insert(ctx, card, 0); err != nil {
		logger.FromContext(ctx).Warn("failed to persist new card: %v", err)
	}

	logger.FromContext(ctx).Info("card created: %s", card.Key())
	return card, nil
}

func (s *studyService) History(ctx context.Context, limit int) []models.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.RecentHistory(limit)
}
