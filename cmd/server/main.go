package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlindgren/cardbox/internal/api"
	"github.com/mlindgren/cardbox/internal/config"
	"github.com/mlindgren/cardbox/internal/db"
	"github.com/mlindgren/cardbox/internal/logger"
	"github.com/mlindgren/cardbox/internal/repository/sqlite"
	"github.com/mlindgren/cardbox/internal/services"
	"github.com/mlindgren/cardbox/internal/state"
	"github.com/mlindgren/cardbox/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("cardbox server starting")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("deck_path=%s", cfg.DeckPath)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	cardRepo := sqlite.NewCardRepository(database.DB)
	historyRepo := sqlite.NewHistoryRepository(database.DB)
	metaRepo := sqlite.NewMetaRepository(database.DB)

	// Restore the study state from the persisted snapshot.
	startupCtx := context.Background()
	buckets, err := cardRepo.LoadBuckets(startupCtx)
	if err != nil {
		log.Error("failed to load bucket snapshot: %v", err)
		os.Exit(1)
	}
	day, err := metaRepo.Day(startupCtx)
	if err != nil {
		log.Error("failed to load day counter: %v", err)
		os.Exit(1)
	}
	history, err := historyRepo.List(startupCtx, 0)
	if err != nil {
		log.Error("failed to load review history: %v", err)
		os.Exit(1)
	}
	st := state.Restore(buckets, day, history)
	log.Info("state restored: %d cards, day %d, %d history records",
		st.Buckets.CountCards(), st.Day, len(st.History))

	studyService := services.NewStudyService(st, cardRepo, historyRepo, metaRepo)

	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)
	ctx, cancel := context.WithCancel(context.Background())
	importPool.Start(ctx)

	// Seed an empty store from the configured deck file.
	if cfg.DeckPath != "" && st.Buckets.CountCards() == 0 {
		log.Info("empty store, queueing initial deck import from %s", cfg.DeckPath)
		importPool.Submit(&worker.ImportDeckJob{Study: studyService, Path: cfg.DeckPath})
	}

	srv := &api.Server{
		Study:      studyService,
		ImportPool: importPool,
		DeckPath:   cfg.DeckPath,
		DB:         database,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping import pool")
	cancel()
	importPool.Stop()

	log.Info("cardbox server stopped")
}
