package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/KevinNatera/l2assessment/internal/model"
)

// MockCategorizer is a deterministic keyword categorizer used by tests and
// the dry-run mode. No network calls are made.
type MockCategorizer struct {
	rules []mockRule
}

type mockRule struct {
	category string
	keywords []string
}

// NewMockCategorizer creates a mock categorizer with built-in keyword rules.
func NewMockCategorizer() *MockCategorizer {
	return &MockCategorizer{
		rules: []mockRule{
			{model.CategoryBilling, []string{"invoice", "bill", "charge", "refund", "subscription", "payment"}},
			{model.CategoryTechnicalSupport, []string{"error", "crash", "bug", "broken", "not working", "fail"}},
			{model.CategoryFeatureRequest, []string{"feature", "would be nice", "suggestion", "please add"}},
			{model.CategoryAccount, []string{"password", "login", "account", "email address", "2fa"}},
			{model.CategoryProductQuestion, []string{"how do i", "how to", "question", "does it", "can i"}},
		},
	}
}

// Categorize matches the message against the keyword rules in order.
func (m *MockCategorizer) Categorize(_ context.Context, message string) (Categorization, error) {
	lower := strings.ToLower(message)

	for _, rule := range m.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return Categorization{
					Category:  rule.category,
					Reasoning: fmt.Sprintf("Mentions %q.", kw),
				}, nil
			}
		}
	}

	return Categorization{
		Category:  model.CategorySpamOther,
		Reasoning: "No recognizable support topic found.",
	}, nil
}
