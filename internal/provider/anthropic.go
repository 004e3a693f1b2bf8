package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicCategorizer implements Categorizer over the Anthropic Messages API.
type anthropicCategorizer struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func newAnthropicCategorizer(cfg Config) (Categorizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-5-20250929"
	}

	maxTokens := int64(cfg.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 512
	}

	return &anthropicCategorizer{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Categorize sends a categorization request to Anthropic.
func (c *anthropicCategorizer) Categorize(ctx context.Context, message string) (Categorization, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: categorizeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildCategorizePrompt(message))),
		},
	})
	if err != nil {
		return Categorization{}, fmt.Errorf("anthropic request failed: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return parseCategorization(block.Text)
		}
	}

	return Categorization{}, fmt.Errorf("no text content in anthropic response")
}
