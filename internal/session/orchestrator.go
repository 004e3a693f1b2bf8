// Package session implements the human-in-the-loop triage workflow: the
// analysis orchestrator, the correction tracker, and the review session
// state machine.
package session

import (
	"context"
	"time"

	"github.com/KevinNatera/l2assessment/internal/common"
	"github.com/KevinNatera/l2assessment/internal/model"
	"github.com/KevinNatera/l2assessment/internal/provider"
)

// Orchestrator drives one message through the three suggestion providers and
// assembles the analysis result. It holds no per-run state and is safe to
// reuse across runs; serializing runs is the session's job, not the
// orchestrator's.
type Orchestrator struct {
	categorizer provider.Categorizer
	scorer      provider.UrgencyScorer
	templater   provider.ActionTemplater
	now         func() time.Time
}

// NewOrchestrator creates an orchestrator over the given providers.
func NewOrchestrator(categorizer provider.Categorizer, scorer provider.UrgencyScorer, templater provider.ActionTemplater) *Orchestrator {
	return &Orchestrator{
		categorizer: categorizer,
		scorer:      scorer,
		templater:   templater,
		now:         time.Now,
	}
}

// Analyze runs a full analysis of a message. It returns either a fully
// populated result or an error, never a partial result. Empty or
// whitespace-only input fails validation before any provider is invoked; a
// categorizer failure aborts the run before the scorer or templater are
// called.
func (o *Orchestrator) Analyze(ctx context.Context, message string) (*model.AnalysisResult, error) {
	if (model.Message{Text: message}).IsEmpty() {
		return nil, common.NewValidationError("enter a message to analyze", common.ErrEmptyMessage)
	}

	categorization, err := o.categorizer.Categorize(ctx, message)
	if err != nil {
		return nil, common.NewAnalysisError("categorization", err)
	}

	urgency, err := o.scorer.ScoreUrgency(message)
	if err != nil {
		return nil, common.NewAnalysisError("urgency scoring", err)
	}

	action := o.templater.RecommendAction(categorization.Category)

	return &model.AnalysisResult{
		Timestamp:         o.now(),
		Message:           message,
		Category:          categorization.Category,
		Urgency:           urgency,
		RecommendedAction: action,
		Reasoning:         categorization.Reasoning,
	}, nil
}
