package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect saved triage records",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyExportCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved records in insertion order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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

			records, err := db.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No records saved yet.")
				return nil
			}

			for _, r := range records {
				corrected := ""
				if r.OriginalCategory != "" && r.OriginalCategory != r.Category {
					corrected = fmt.Sprintf(" (AI suggested %s)", r.OriginalCategory)
				}
				fmt.Fprintf(out, "%s  [%s/%s]%s  %s\n",
					r.SavedAt.Local().Format("2006-01-02 15:04"),
					r.Category, r.Urgency, corrected,
					truncate(r.Message, 60))
			}

			return nil
		},
	}
}

func historyExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved records as JSON",
		RunE:  runHistoryExport,
	}

	cmd.Flags().StringP("output", "o", "triage-history.json", "Output file path")

	return cmd
}

func runHistoryExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
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

	records, err := db.List(ctx)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(records)), "exporting")

	exported := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		data, marshalErr := json.Marshal(r)
		if marshalErr != nil {
			return fmt.Errorf("failed to serialize record %d: %w", r.ID, marshalErr)
		}
		exported = append(exported, data)
		_ = bar.Add(1)
	}

	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize history: %w", err)
	}

	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	slog.Info("Exported history", "records", len(records), "path", output)

	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
