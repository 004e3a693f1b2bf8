package provider

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the settings for constructing a categorizer.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxRetries  int
	RetryDelay  time.Duration
	Temperature float64
	MaxTokens   int
}

// NewCategorizer creates a categorizer based on the provided configuration.
func NewCategorizer(cfg Config) (Categorizer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "anthropic":
		return newAnthropicCategorizer(cfg)
	case "openai":
		return newOpenAICategorizer(cfg)
	case "mock":
		return NewMockCategorizer(), nil
	default:
		return nil, fmt.Errorf("unsupported categorizer provider: %s", cfg.Provider)
	}
}
