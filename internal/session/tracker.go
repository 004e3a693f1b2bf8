package session

import "github.com/KevinNatera/l2assessment/internal/model"

// Tracker holds the immutable original suggestions captured when an analysis
// run succeeds. It answers whether the live result still matches the
// automated suggestion, and computes the choice lists offered in the UI.
// All reads are pure; the tracker only changes through Capture and Reset.
type Tracker struct {
	originalCategory string
	originalUrgency  string
	captured         bool
}

// Capture records the suggestion baseline for the current run. It replaces
// any previous baseline.
func (t *Tracker) Capture(category, urgency string) {
	t.originalCategory = category
	t.originalUrgency = urgency
	t.captured = true
}

// Reset clears the baseline. Called when a new run begins or the session
// clears.
func (t *Tracker) Reset() {
	t.originalCategory = ""
	t.originalUrgency = ""
	t.captured = false
}

// Captured reports whether a baseline is present.
func (t *Tracker) Captured() bool {
	return t.captured
}

// OriginalCategory returns the category suggested by the categorizer.
func (t *Tracker) OriginalCategory() string {
	return t.originalCategory
}

// OriginalUrgency returns the urgency suggested by the scorer.
func (t *Tracker) OriginalUrgency() string {
	return t.originalUrgency
}

// CategoryMatches reports whether the current category equals the original
// suggestion.
func (t *Tracker) CategoryMatches(current string) bool {
	return t.captured && current == t.originalCategory
}

// UrgencyMatches reports whether the current urgency equals the original
// suggestion.
func (t *Tracker) UrgencyMatches(current string) bool {
	return t.captured && current == t.originalUrgency
}

// CategoryOptions returns the category choice list: the defaults first, then
// the original and current values in first-seen order when they fall outside
// the defaults, de-duplicated.
func (t *Tracker) CategoryOptions(current string) []string {
	return unionOptions(model.DefaultCategories(), t.originalCategory, current)
}

// UrgencyOptions returns the urgency choice list, built the same way.
func (t *Tracker) UrgencyOptions(current string) []string {
	return unionOptions(model.DefaultUrgencies(), t.originalUrgency, current)
}

func unionOptions(defaults []string, extras ...string) []string {
	seen := make(map[string]bool, len(defaults)+len(extras))
	options := make([]string, 0, len(defaults)+len(extras))

	for _, d := range defaults {
		seen[d] = true
		options = append(options, d)
	}
	for _, e := range extras {
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		options = append(options, e)
	}

	return options
}
