package provider

import (
	"fmt"
	"strings"

	"github.com/KevinNatera/l2assessment/internal/model"
)

const categorizeSystemPrompt = `You are a customer support triage assistant. ` +
	`Classify the customer message into exactly one category and explain your ` +
	`reasoning briefly in markdown. Respond only with JSON in the exact format requested.`

// buildCategorizePrompt renders the user prompt for a categorization call.
// The default categories are offered as guidance, not as a closed set: the
// model may answer with a novel label when none of them fit.
func buildCategorizePrompt(message string) string {
	var sb strings.Builder

	sb.WriteString("Categorize this customer support message.\n\n")
	sb.WriteString("Preferred categories:\n")
	for _, c := range model.DefaultCategories() {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	sb.WriteString("\nUse a different short label only if none of the above fit.\n\n")
	fmt.Fprintf(&sb, "Message:\n%s\n\n", message)
	sb.WriteString(`Respond with JSON: {"category": "...", "reasoning": "..."}`)

	return sb.String()
}
