package provider

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanMarkdownWrapper strips markdown code fences that models sometimes
// wrap around JSON responses.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx != -1 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	return strings.TrimSpace(content)
}

// parseCategorization extracts the category and reasoning from a model
// response.
func parseCategorization(content string) (Categorization, error) {
	var jsonResp struct {
		Category  string `json:"category"`
		Reasoning string `json:"reasoning"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return Categorization{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if jsonResp.Category == "" {
		return Categorization{}, fmt.Errorf("no category found in response")
	}

	return Categorization{
		Category:  strings.TrimSpace(jsonResp.Category),
		Reasoning: jsonResp.Reasoning,
	}, nil
}
