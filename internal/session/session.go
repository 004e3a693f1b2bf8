package session

import (
	"context"
	"fmt"
	"time"

	"github.com/KevinNatera/l2assessment/internal/common"
	"github.com/KevinNatera/l2assessment/internal/model"
	"github.com/KevinNatera/l2assessment/internal/provider"
	"github.com/KevinNatera/l2assessment/internal/service"
)

// State represents where a review session is in the triage workflow.
type State int

// Session states.
const (
	// StateIdle means no message has been analyzed yet; input is editable.
	StateIdle State = iota
	// StateAnalyzing means provider calls are in flight; input is locked.
	StateAnalyzing
	// StateReviewing means a result is present and editable; input stays locked.
	StateReviewing
	// StateSaved means the result has been persisted; everything is read-only.
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	case StateReviewing:
		return "reviewing"
	case StateSaved:
		return "saved"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StateError indicates an operation attempted in a state that forbids it.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.State)
}

// Session is the single in-memory workflow instance tracking one message
// from input through save. It owns the live analysis result and the
// suggestion baseline until the record is handed to the history store.
//
// The session is single-threaded by design: all transitions must happen on
// one goroutine. Analysis runs are serialized structurally by the state
// guard; each run carries a sequence number so a response arriving after a
// clear is discarded instead of being applied to a stale session.
type Session struct {
	store     service.HistoryStore
	templater provider.ActionTemplater
	now       func() time.Time
	result    *model.AnalysisResult
	tracker   Tracker
	run       uint64
	state     State
}

// NewSession creates an idle review session. The templater re-derives the
// recommended action when the agent picks a different category; it may be
// nil, in which case category edits leave the action text alone.
func NewSession(store service.HistoryStore, templater provider.ActionTemplater) *Session {
	return &Session{
		store:     store,
		templater: templater,
		now:       time.Now,
		state:     StateIdle,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// CanAnalyze reports whether a new analysis may start. A new run is allowed
// only when the session is idle: never while one is in flight, nor while a
// result is pending review or sitting saved. The session must be cleared
// first.
func (s *Session) CanAnalyze() bool {
	return s.state == StateIdle
}

// Run returns the sequence number of the current analysis run.
func (s *Session) Run() uint64 {
	return s.run
}

// Result returns a copy of the live analysis result, if one is present.
func (s *Session) Result() (model.AnalysisResult, bool) {
	if s.result == nil {
		return model.AnalysisResult{}, false
	}
	return *s.result, true
}

// Start begins a new analysis run for the given message and returns the
// run's sequence number. The message must be non-empty; validation failures
// leave the session idle. The caller invokes the orchestrator and reports
// the outcome through Finish with the returned sequence number.
func (s *Session) Start(message string) (uint64, error) {
	if s.state != StateIdle {
		return 0, &StateError{Op: "start analysis", State: s.state}
	}
	if (model.Message{Text: message}).IsEmpty() {
		return 0, common.NewValidationError("enter a message to analyze", common.ErrEmptyMessage)
	}

	s.run++
	s.result = nil
	s.tracker.Reset()
	s.state = StateAnalyzing

	return s.run, nil
}

// Finish applies the outcome of an analysis run. Responses whose sequence
// number does not match the current run are stale and are discarded without
// any state change; Finish reports whether the outcome was applied. On
// success the session captures the suggestion baseline and moves to
// reviewing; on failure it returns to idle with nothing retained.
func (s *Session) Finish(run uint64, result *model.AnalysisResult, err error) bool {
	if s.state != StateAnalyzing || run != s.run {
		return false
	}

	if err != nil {
		s.result = nil
		s.tracker.Reset()
		s.state = StateIdle
		return true
	}

	r := *result
	s.result = &r
	s.tracker.Capture(r.Category, r.Urgency)
	s.state = StateReviewing

	return true
}

// EditCategory updates the live result's category. Picking a different
// category also swaps in that category's reply template, matching what the
// automated pass would have proposed; the suggestion baseline is untouched.
func (s *Session) EditCategory(value string) error {
	if s.state != StateReviewing {
		return &StateError{Op: "edit category", State: s.state}
	}

	s.result.Category = value
	if s.templater != nil {
		s.result.RecommendedAction = s.templater.RecommendAction(value)
	}

	return nil
}

// EditUrgency updates the live result's urgency level.
func (s *Session) EditUrgency(value string) error {
	if s.state != StateReviewing {
		return &StateError{Op: "edit urgency", State: s.state}
	}

	s.result.Urgency = value

	return nil
}

// EditAction replaces the live result's recommended action text.
func (s *Session) EditAction(value string) error {
	if s.state != StateReviewing {
		return &StateError{Op: "edit action", State: s.state}
	}

	s.result.RecommendedAction = value

	return nil
}

// AppendQuickAction concatenates text onto the recommended action, separated
// by a blank line. It never replaces existing text.
func (s *Session) AppendQuickAction(text string) error {
	if s.state != StateReviewing {
		return &StateError{Op: "append quick action", State: s.state}
	}

	if s.result.RecommendedAction == "" {
		s.result.RecommendedAction = text
	} else {
		s.result.RecommendedAction += "\n\n" + text
	}

	return nil
}

// Save finalizes the live result into a history record with a fresh
// save-time timestamp and appends it to the store. The record carries the
// original suggestions alongside the final values so correction rates stay
// measurable after the session ends. The session moves to saved only when
// persistence succeeds; on a storage failure it remains in reviewing so the
// agent can retry.
func (s *Session) Save(ctx context.Context) (model.HistoryRecord, error) {
	if s.state != StateReviewing {
		return model.HistoryRecord{}, &StateError{Op: "save", State: s.state}
	}

	record := model.HistoryRecord{
		SavedAt:           s.now(),
		Message:           s.result.Message,
		Category:          s.result.Category,
		Urgency:           s.result.Urgency,
		RecommendedAction: s.result.RecommendedAction,
		Reasoning:         s.result.Reasoning,
		OriginalCategory:  s.tracker.OriginalCategory(),
		OriginalUrgency:   s.tracker.OriginalUrgency(),
	}

	if err := s.store.Append(ctx, &record); err != nil {
		return model.HistoryRecord{}, err
	}

	s.state = StateSaved

	return record, nil
}

// Clear discards the live result and baseline and returns the session to
// idle. Clearing is a no-op when already idle and is forbidden while an
// analysis is in flight; an in-flight run can only end through Finish, and
// its response is dropped there if it no longer matches the current run.
func (s *Session) Clear() error {
	if s.state == StateAnalyzing {
		return &StateError{Op: "clear", State: s.state}
	}

	s.result = nil
	s.tracker.Reset()
	s.state = StateIdle

	return nil
}

// CategoryMatches reports whether the live category still equals the
// automated suggestion.
func (s *Session) CategoryMatches() bool {
	if s.result == nil {
		return false
	}
	return s.tracker.CategoryMatches(s.result.Category)
}

// UrgencyMatches reports whether the live urgency still equals the
// automated suggestion.
func (s *Session) UrgencyMatches() bool {
	if s.result == nil {
		return false
	}
	return s.tracker.UrgencyMatches(s.result.Urgency)
}

// CategoryOptions returns the category choice list for the live result.
func (s *Session) CategoryOptions() []string {
	current := ""
	if s.result != nil {
		current = s.result.Category
	}
	return s.tracker.CategoryOptions(current)
}

// UrgencyOptions returns the urgency choice list for the live result.
func (s *Session) UrgencyOptions() []string {
	current := ""
	if s.result != nil {
		current = s.result.Urgency
	}
	return s.tracker.UrgencyOptions(current)
}
