package api

import (
	"net/http"
	"strconv"

	"github.com/mlindgren/cardbox/internal/db"
	"github.com/mlindgren/cardbox/internal/errors"
	"github.com/mlindgren/cardbox/internal/logger"
	"github.com/mlindgren/cardbox/internal/models"
	"github.com/mlindgren/cardbox/internal/services"
	"github.com/mlindgren/cardbox/internal/worker"
)

type Server struct {
	Study      services.StudyService
	ImportPool *worker.Pool
	DeckPath   string
	DB         *db.DB
}

func (s *Server) handlePractice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("computing practice set")

	day, cards, err := s.Study.Practice(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"day":   day,
		"count": len(cards),
		"cards": cards,
	})
}

type reviewRequest struct {
	Front   string `json:"front"`
	Back    string `json:"back"`
	Outcome string `json:"outcome"`
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}
	if req.Front == "" || req.Back == "" {
		handleError(w, r, errors.NewValidationError("card", "front and back are required"))
		return
	}

	outcome, err := models.ParseOutcome(req.Outcome)
	if err != nil {
		handleError(w, r, errors.NewValidationError("outcome", "must be one of wrong, hard, easy"))
		return
	}

	log = log.WithFields(map[string]any{"front": req.Front, "outcome": outcome.String()})
	log.Debug("submitting review")

	rec, err := s.Study.SubmitReview(r.Context(), req.Front, req.Back, outcome)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Study.Progress(r.Context()))
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	front := r.URL.Query().Get("front")
	back := r.URL.Query().Get("back")
	if front == "" || back == "" {
		handleError(w, r, errors.NewValidationError("card", "front and back query parameters are required"))
		return
	}

	hint, err := s.Study.Hint(r.Context(), front, back)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"hint": hint})
}

func (s *Server) handleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	day, err := s.Study.AdvanceDay(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"day": day})
}

type createCardRequest struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Hint  string   `json:"hint"`
	Tags  []string `json:"tags"`
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	card, err := s.Study.CreateCard(r.Context(), req.Front, req.Back, req.Hint, req.Tags)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, card)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			handleError(w, r, errors.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		limit = n
	}

	records := s.Study.History(r.Context(), limit)
	respondJSON(w, http.StatusOK, map[string]any{
		"count":   len(records),
		"records": records,
	})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if s.DeckPath == "" {
		handleError(w, r, errors.NewBadRequestError("no deck file configured (DECK_PATH)"))
		return
	}

	s.ImportPool.Submit(&worker.ImportDeckJob{
		Study: s.Study,
		Path:  s.DeckPath,
	})
	log.Info("deck import job queued: %s", s.DeckPath)

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "import queued"})
}
