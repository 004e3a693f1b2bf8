package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategorization(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Categorization
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"category": "Billing & Subscription", "reasoning": "Mentions invoice"}`,
			want:    Categorization{Category: "Billing & Subscription", Reasoning: "Mentions invoice"},
		},
		{
			name:    "json wrapped in markdown fence",
			content: "```json\n{\"category\": \"Product Question\", \"reasoning\": \"Asks how to\"}\n```",
			want:    Categorization{Category: "Product Question", Reasoning: "Asks how to"},
		},
		{
			name:    "fence without language tag",
			content: "```\n{\"category\": \"Spam/Other\", \"reasoning\": \"\"}\n```",
			want:    Categorization{Category: "Spam/Other"},
		},
		{
			name:    "novel category is passed through",
			content: `{"category": "Legal Inquiry", "reasoning": "Legal threat"}`,
			want:    Categorization{Category: "Legal Inquiry", Reasoning: "Legal threat"},
		},
		{
			name:    "surrounding whitespace trimmed from category",
			content: `{"category": "  Feature Request ", "reasoning": "r"}`,
			want:    Categorization{Category: "Feature Request", Reasoning: "r"},
		},
		{
			name:    "missing category",
			content: `{"reasoning": "no label"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			content: "Billing & Subscription",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCategorization(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanMarkdownWrapper(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("  {\"a\":1}\n"))
}
