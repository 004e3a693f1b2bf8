package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KevinNatera/l2assessment/internal/config"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [message]",
		Short: "Pre-populate the next review session's input",
		Long: `Store a message in the one-shot seed slot. The next "triage review"
consumes it into the input exactly once; it is never reapplied. This is how
other tools hand a message off to the triage workflow.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(args[0])
			if message == "" {
				return fmt.Errorf("seed message cannot be empty")
			}

			seed := config.NewSeedSource(stateDir())
			if err := seed.Write(message); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Seed stored for the next review session.")
			return nil
		},
	}
}
