package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KevinNatera/l2assessment/internal/config"
	"github.com/KevinNatera/l2assessment/internal/session"
	"github.com/KevinNatera/l2assessment/internal/tui"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review an inbound message interactively",
		Long: `Run the interactive triage workflow: paste a customer message, let the
automated pass propose a category, urgency, and reply, then correct anything
that's wrong and save the final record to the local history.

Examples:
  triage review              # Start with an empty input
  triage review --mock       # Use the offline keyword categorizer`,
		RunE: runReview,
	}

	cmd.Flags().Bool("mock", false, "Use the offline keyword categorizer instead of an LLM")
	_ = viper.BindPFlag("llm.mock", cmd.Flags().Lookup("mock"))

	return cmd
}

func runReview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if viper.GetBool("llm.mock") {
		viper.Set("llm.provider", "mock")
	}

	db, err := openStorage()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("failed to run migrations: %w", migrateErr)
	}

	categorizer, err := createCategorizer()
	if err != nil {
		return fmt.Errorf("failed to create categorizer: %w", err)
	}

	scorer, err := createScorer()
	if err != nil {
		return err
	}

	templater, err := createTemplater()
	if err != nil {
		return err
	}

	slog.Info("Starting review session", "provider", viper.GetString("llm.provider"))

	return tui.Run(tui.Config{
		Context:      ctx,
		Session:      session.NewSession(db, templater),
		Orchestrator: session.NewOrchestrator(categorizer, scorer, templater),
		Seed:         config.NewSeedSource(stateDir()),
	})
}
