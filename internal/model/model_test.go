package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantEmpty  bool
		wantLength int
	}{
		{name: "empty", text: "", wantEmpty: true, wantLength: 0},
		{name: "whitespace only", text: " \t\n", wantEmpty: true, wantLength: 3},
		{name: "plain text", text: "hello", wantEmpty: false, wantLength: 5},
		{name: "multibyte runes counted once", text: "héllo", wantEmpty: false, wantLength: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Message{Text: tt.text}
			assert.Equal(t, tt.wantEmpty, m.IsEmpty())
			assert.Equal(t, tt.wantLength, m.Length())
		})
	}
}

func TestDefaultLabels(t *testing.T) {
	categories := DefaultCategories()
	assert.Len(t, categories, 6)
	assert.Equal(t, CategoryTechnicalSupport, categories[0])
	assert.Equal(t, CategorySpamOther, categories[5])

	urgencies := DefaultUrgencies()
	assert.Equal(t, []string{UrgencyHigh, UrgencyMedium, UrgencyLow}, urgencies)

	// Callers get fresh slices.
	categories[0] = "mutated"
	assert.Equal(t, CategoryTechnicalSupport, DefaultCategories()[0])
}

func TestHistoryRecordJSON(t *testing.T) {
	record := HistoryRecord{
		SavedAt:           time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Message:           "My invoice is wrong",
		Category:          CategoryTechnicalSupport,
		Urgency:           UrgencyMedium,
		RecommendedAction: "We will look into it.",
		Reasoning:         "Mentions invoice",
		OriginalCategory:  CategoryBilling,
		OriginalUrgency:   UrgencyMedium,
		ID:                42,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "2026-03-14T09:30:00Z", decoded["timestamp"])
	assert.Equal(t, "My invoice is wrong", decoded["message"])
	assert.Equal(t, CategoryBilling, decoded["originalCategory"])
	assert.NotContains(t, decoded, "ID", "the storage key is not part of the wire format")
}

func TestHistoryRecordJSONOmitsEmptyOriginals(t *testing.T) {
	record := HistoryRecord{
		SavedAt:  time.Now(),
		Message:  "m",
		Category: CategoryBilling,
		Urgency:  UrgencyLow,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "originalCategory")
	assert.NotContains(t, decoded, "originalUrgency")
}
