// Command cardbox is an admin CLI over the study store: import decks,
// inspect progress, list due cards, and advance the day counter without
// going through the HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mlindgren/cardbox/internal/db"
	"github.com/mlindgren/cardbox/internal/deck"
	"github.com/mlindgren/cardbox/internal/logger"
	"github.com/mlindgren/cardbox/internal/repository/sqlite"
	"github.com/mlindgren/cardbox/internal/services"
	"github.com/mlindgren/cardbox/internal/state"
)

var dbPath string

func main() {
	logger.SetDefault(logger.New(logger.WithLevel(logger.WARN), logger.WithOutput(os.Stderr)))

	rootCmd := &cobra.Command{
		Use:   "cardbox",
		Short: "Leitner flashcard scheduling admin tool",
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "file:cardbox.db", "database path")

	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(progressCmd())
	rootCmd.AddCommand(dueCmd())
	rootCmd.AddCommand(advanceCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openService restores the study state from the database and wires the
// service on top of it, exactly like the server does at startup.
func openService(ctx context.Context) (services.StudyService, *state.State, *db.DB, error) {
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	cardRepo := sqlite.NewCardRepository(database.DB)
	historyRepo := sqlite.NewHistoryRepository(database.DB)
	metaRepo := sqlite.NewMetaRepository(database.DB)

	buckets, err := cardRepo.LoadBuckets(ctx)
	if err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("load buckets: %w", err)
	}
	day, err := metaRepo.Day(ctx)
	if err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("load day counter: %w", err)
	}

	st := state.Restore(buckets, day, nil)
	return services.NewStudyService(st, cardRepo, historyRepo, metaRepo), st, database, nil
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [deck.json]",
		Short: "Import a JSON deck file into bucket 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, _, database, err := openService(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			cards, err := deck.ParseFile(args[0])
			if err != nil {
				return err
			}

			created, skipped := 0, 0
			for _, c := range cards {
				if _, err := svc.CreateCard(ctx, c.Front, c.Back, c.Hint, c.Tags); err != nil {
					skipped++
					continue
				}
				created++
			}
			fmt.Printf("imported %d cards (%d skipped)\n", created, skipped)
			return nil
		},
	}
}

func progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show learning progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, st, database, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			stats := svc.Progress(cmd.Context())
			fmt.Printf("day:        %d\n", st.Day)
			fmt.Printf("cards:      %d\n", stats.TotalCards)
			fmt.Printf("learned:    %d (bucket >= %d)\n", stats.CardsLearned, stats.LearningThreshold)
			fmt.Printf("completion: %.1f%%\n", stats.CompletionPercentage)

			buckets := make([]int, 0, len(stats.CardsByBucket))
			for b := range stats.CardsByBucket {
				buckets = append(buckets, b)
			}
			sort.Ints(buckets)
			for _, b := range buckets {
				fmt.Printf("  bucket %d: %d\n", b, stats.CardsByBucket[b])
			}
			return nil
		},
	}
}

func dueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List cards due for review today",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, database, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			day, cards, err := svc.Practice(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("day %d: %d cards due\n", day, len(cards))
			for _, c := range cards {
				fmt.Printf("  %s -> %s\n", c.Front, c.Back)
			}
			return nil
		},
	}
}

func advanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance",
		Short: "Advance the day counter by one",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, database, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			day, err := svc.AdvanceDay(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("advanced to day %d\n", day)
			return nil
		},
	}
}
