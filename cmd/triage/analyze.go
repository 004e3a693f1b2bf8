package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KevinNatera/l2assessment/internal/session"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [message]",
		Short: "Run a one-shot analysis without review",
		Long: `Run the automated pass over a single message and print the proposed
category, urgency, and reply. Nothing is saved; use "triage review" for the
full correction workflow.

The message is taken from the argument, or from stdin when no argument is
given.

Examples:
  triage analyze "My invoice is wrong"
  cat message.txt | triage analyze`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().Bool("mock", false, "Use the offline keyword categorizer instead of an LLM")
	_ = viper.BindPFlag("llm.mock", cmd.Flags().Lookup("mock"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if viper.GetBool("llm.mock") {
		viper.Set("llm.provider", "mock")
	}

	var message string
	if len(args) == 1 {
		message = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read message from stdin: %w", err)
		}
		message = string(data)
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

	orchestrator := session.NewOrchestrator(categorizer, scorer, templater)

	result, err := orchestrator.Analyze(ctx, message)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Category: %s\n", result.Category)
	fmt.Fprintf(out, "Urgency:  %s\n", result.Urgency)
	if result.Reasoning != "" {
		fmt.Fprintf(out, "\nReasoning:\n%s\n", strings.TrimSpace(result.Reasoning))
	}
	fmt.Fprintf(out, "\nRecommended reply:\n%s\n", result.RecommendedAction)

	return nil
}
