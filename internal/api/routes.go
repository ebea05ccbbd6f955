package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/practice", s.handlePractice)
		r.Post("/practice/review", s.handleReview)
		r.Get("/progress", s.handleProgress)
		r.Get("/hint", s.handleHint)
		r.Post("/day/advance", s.handleAdvanceDay)
		r.Post("/cards", s.handleCreateCard)
		r.Get("/history", s.handleHistory)
		r.Post("/import", s.handleImport)
	})

	return r
}
