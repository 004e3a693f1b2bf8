package model

import "time"

// Suggestion is the output of one analysis run before any human edit.
// Category and urgency are captured once per run and act as the immutable
// baseline against which corrections are measured.
type Suggestion struct {
	Category  string
	Urgency   string
	Action    string
	Reasoning string
}

// AnalysisResult is the mutable working record shown to the agent during
// review. Category, Urgency, and RecommendedAction may diverge from the
// suggested values through user edits; Message and Reasoning are fixed once
// the run completes.
type AnalysisResult struct {
	Timestamp         time.Time
	Message           string
	Category          string
	Urgency           string
	RecommendedAction string
	Reasoning         string
}

// HistoryRecord is a finalized triage snapshot appended to persistent
// storage. OriginalCategory and OriginalUrgency preserve the automated
// suggestion so correction-rate analysis remains possible after the session
// ends. SavedAt is stamped at save time, not analysis time.
type HistoryRecord struct {
	SavedAt           time.Time `json:"timestamp"`
	Message           string    `json:"message"`
	Category          string    `json:"category"`
	Urgency           string    `json:"urgency"`
	RecommendedAction string    `json:"recommendedAction"`
	Reasoning         string    `json:"reasoning"`
	OriginalCategory  string    `json:"originalCategory,omitempty"`
	OriginalUrgency   string    `json:"originalUrgency,omitempty"`
	ID                int64     `json:"-"`
}
