// Package provider contains the external collaborators that supply automated
// triage suggestions: categorization, urgency scoring, and reply templates.
package provider

import "context"

// Categorization is the categorizer's output for one message.
type Categorization struct {
	Category  string
	Reasoning string
}

// Categorizer proposes a category label for a customer message. It is the
// only asynchronous provider and may fail on network or parsing errors.
type Categorizer interface {
	Categorize(ctx context.Context, message string) (Categorization, error)
}

// UrgencyScorer proposes an urgency level for a message. Implementations
// must be deterministic; the bundled rule scorer never returns an error, but
// the contract allows one so failures abort an analysis run the same way a
// categorization failure does.
type UrgencyScorer interface {
	ScoreUrgency(message string) (string, error)
}

// ActionTemplater proposes boilerplate reply text for a category. It must
// return sensible default text for unrecognized categories.
type ActionTemplater interface {
	RecommendAction(category string) string
}
