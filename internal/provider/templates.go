package provider

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KevinNatera/l2assessment/internal/model"
)

// Templater implements ActionTemplater with a category-to-reply map. Unknown
// categories fall back to a generic acknowledgement.
type Templater struct {
	templates map[string]string
	fallback  string
}

const defaultFallbackTemplate = "Thank you for contacting support. We have received your message " +
	"and a member of our team will follow up with you shortly."

// NewTemplater creates a templater with the built-in reply templates.
func NewTemplater() *Templater {
	return &Templater{
		templates: map[string]string{
			model.CategoryTechnicalSupport: "Thank you for reporting this issue. Our technical team is " +
				"looking into it. Could you share any error messages you see, along with the steps " +
				"that led to the problem? That will help us resolve it faster.",
			model.CategoryBilling: "Thank you for reaching out about your billing concern. We take " +
				"billing accuracy seriously and will review your account right away. You should hear " +
				"back from us within one business day.",
			model.CategoryProductQuestion: "Thanks for your question! You may find an immediate answer " +
				"in our documentation, but we're also happy to walk you through it. Let us know if " +
				"the docs don't cover your case.",
			model.CategoryFeatureRequest: "Thank you for the suggestion! We've logged your request and " +
				"passed it along to our product team. We can't promise a timeline, but customer ideas " +
				"directly shape our roadmap.",
			model.CategoryAccount: "Thanks for contacting us about your account. For your security, " +
				"we may need to verify your identity before making changes. A support agent will " +
				"reach out with the next steps.",
			model.CategorySpamOther: "Thank you for your message. We've received it and will route it " +
				"to the right team if a follow-up is needed.",
		},
		fallback: defaultFallbackTemplate,
	}
}

// LoadTemplater creates a templater with the built-in templates overridden
// by entries from a YAML file mapping category labels to reply text.
func LoadTemplater(path string) (*Templater, error) {
	t := NewTemplater()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}

	for category, text := range overrides {
		t.templates[category] = text
	}

	return t, nil
}

// RecommendAction returns the reply template for a category, or the generic
// fallback for categories without one.
func (t *Templater) RecommendAction(category string) string {
	if tmpl, ok := t.templates[category]; ok {
		return tmpl
	}
	return t.fallback
}
