package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinNatera/l2assessment/internal/common"
	"github.com/KevinNatera/l2assessment/internal/model"
)

// fakeStore implements service.HistoryStore in memory.
type fakeStore struct {
	failWith error
	records  []model.HistoryRecord
	nextID   int64
}

func (f *fakeStore) Append(_ context.Context, record *model.HistoryRecord) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	record.ID = f.nextID
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeStore) List(_ context.Context) ([]model.HistoryRecord, error) {
	return append([]model.HistoryRecord(nil), f.records...), nil
}

func (f *fakeStore) Count(_ context.Context) (int, error) {
	return len(f.records), nil
}

func (f *fakeStore) Migrate(_ context.Context) error { return nil }
func (f *fakeStore) Close() error                    { return nil }

func billingResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Timestamp:         time.Now(),
		Message:           "My invoice is wrong",
		Category:          model.CategoryBilling,
		Urgency:           model.UrgencyMedium,
		RecommendedAction: "We will review your billing concern.",
		Reasoning:         "Mentions invoice",
	}
}

// startReviewing drives a session through a successful run into reviewing.
func startReviewing(t *testing.T, sess *Session) uint64 {
	t.Helper()
	run, err := sess.Start("My invoice is wrong")
	require.NoError(t, err)
	require.True(t, sess.Finish(run, billingResult(), nil))
	require.Equal(t, StateReviewing, sess.State())
	return run
}

func TestSessionStartGuards(t *testing.T) {
	t.Run("empty message stays idle with a validation error", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)

		_, err := sess.Start("   \n ")
		require.Error(t, err)

		var validationErr *common.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, StateIdle, sess.State())
		assert.True(t, sess.CanAnalyze())
	})

	t.Run("cannot start while analyzing", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)

		_, err := sess.Start("first message")
		require.NoError(t, err)
		assert.Equal(t, StateAnalyzing, sess.State())
		assert.False(t, sess.CanAnalyze())

		_, err = sess.Start("second message")
		var stateErr *StateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, StateAnalyzing, stateErr.State)
	})

	t.Run("cannot start while a result is pending review or saved", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)
		startReviewing(t, sess)

		_, err := sess.Start("another message")
		var stateErr *StateError
		require.ErrorAs(t, err, &stateErr)

		_, err = sess.Save(context.Background())
		require.NoError(t, err)

		_, err = sess.Start("another message")
		require.ErrorAs(t, err, &stateErr)

		require.NoError(t, sess.Clear())
		assert.True(t, sess.CanAnalyze())
	})
}

func TestSessionFinish(t *testing.T) {
	t.Run("success captures the baseline", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)
		startReviewing(t, sess)

		assert.True(t, sess.CategoryMatches())
		assert.True(t, sess.UrgencyMatches())

		result, ok := sess.Result()
		require.True(t, ok)
		assert.Equal(t, model.CategoryBilling, result.Category)
		assert.Equal(t, model.UrgencyMedium, result.Urgency)
	})

	t.Run("failure returns to idle with nothing retained", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)

		run, err := sess.Start("My invoice is wrong")
		require.NoError(t, err)

		applied := sess.Finish(run, nil, errors.New("network error"))
		assert.True(t, applied)
		assert.Equal(t, StateIdle, sess.State())

		_, ok := sess.Result()
		assert.False(t, ok, "no partial state after a failed run")
	})

	t.Run("stale responses are discarded", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)

		firstRun, err := sess.Start("first message")
		require.NoError(t, err)

		// The first run fails, then a new run starts before the first
		// run's late response arrives.
		require.True(t, sess.Finish(firstRun, nil, errors.New("timeout")))
		secondRun, err := sess.Start("second message")
		require.NoError(t, err)

		stale := billingResult()
		stale.Message = "first message"
		assert.False(t, sess.Finish(firstRun, stale, nil), "late response from run 1 must be dropped")
		assert.Equal(t, StateAnalyzing, sess.State())

		fresh := billingResult()
		fresh.Message = "second message"
		require.True(t, sess.Finish(secondRun, fresh, nil))

		result, ok := sess.Result()
		require.True(t, ok)
		assert.Equal(t, "second message", result.Message)
	})

	t.Run("finish keeps its own copy of the result", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)
		run, err := sess.Start("My invoice is wrong")
		require.NoError(t, err)

		shared := billingResult()
		require.True(t, sess.Finish(run, shared, nil))
		shared.Category = "mutated"

		result, ok := sess.Result()
		require.True(t, ok)
		assert.Equal(t, model.CategoryBilling, result.Category)
	})
}

func TestSessionEdits(t *testing.T) {
	templater := &countingTemplater{
		templates: map[string]string{
			model.CategoryBilling:          "We will review your billing concern.",
			model.CategoryTechnicalSupport: "Our technical team is on it.",
		},
	}

	t.Run("edits are rejected outside reviewing", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, templater)

		var stateErr *StateError
		assert.ErrorAs(t, sess.EditCategory(model.CategoryBilling), &stateErr)
		assert.ErrorAs(t, sess.EditUrgency(model.UrgencyHigh), &stateErr)
		assert.ErrorAs(t, sess.EditAction("text"), &stateErr)
		assert.ErrorAs(t, sess.AppendQuickAction("text"), &stateErr)
	})

	t.Run("category edit flips the match flag and back", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, templater)
		startReviewing(t, sess)

		assert.True(t, sess.CategoryMatches())

		require.NoError(t, sess.EditCategory(model.CategoryTechnicalSupport))
		assert.False(t, sess.CategoryMatches())

		require.NoError(t, sess.EditCategory(model.CategoryBilling))
		assert.True(t, sess.CategoryMatches(), "editing back to the original restores the match")
	})

	t.Run("category edit swaps in the new category's template", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, templater)
		startReviewing(t, sess)

		require.NoError(t, sess.EditCategory(model.CategoryTechnicalSupport))

		result, _ := sess.Result()
		assert.Equal(t, "Our technical team is on it.", result.RecommendedAction)
		assert.False(t, sess.CategoryMatches())
		assert.True(t, sess.UrgencyMatches(), "urgency is untouched by a category edit")
	})

	t.Run("urgency and action edits touch only their field", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, templater)
		startReviewing(t, sess)

		require.NoError(t, sess.EditUrgency(model.UrgencyHigh))
		require.NoError(t, sess.EditAction("Custom reply."))

		result, _ := sess.Result()
		assert.Equal(t, model.UrgencyHigh, result.Urgency)
		assert.Equal(t, "Custom reply.", result.RecommendedAction)
		assert.Equal(t, model.CategoryBilling, result.Category)
		assert.False(t, sess.UrgencyMatches())
	})

	t.Run("append quick action preserves order", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, templater)
		startReviewing(t, sess)

		original, _ := sess.Result()

		require.NoError(t, sess.AppendQuickAction("A"))
		require.NoError(t, sess.AppendQuickAction("B"))

		result, _ := sess.Result()
		assert.Equal(t, original.RecommendedAction+"\n\nA\n\nB", result.RecommendedAction)
	})
}

func TestSessionSave(t *testing.T) {
	t.Run("save persists by value with originals and a fresh timestamp", func(t *testing.T) {
		store := &fakeStore{}
		sess := NewSession(store, nil)
		sess.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

		startReviewing(t, sess)
		require.NoError(t, sess.EditCategory(model.CategoryTechnicalSupport))

		record, err := sess.Save(context.Background())
		require.NoError(t, err)
		assert.Equal(t, StateSaved, sess.State())

		assert.Equal(t, model.CategoryTechnicalSupport, record.Category)
		assert.Equal(t, model.CategoryBilling, record.OriginalCategory)
		assert.Equal(t, model.UrgencyMedium, record.OriginalUrgency)
		assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), record.SavedAt)

		require.Len(t, store.records, 1)

		// The stored record is an independent copy; later session
		// activity must not reach back into it.
		require.NoError(t, sess.Clear())
		run, err := sess.Start("Different message")
		require.NoError(t, err)
		require.True(t, sess.Finish(run, billingResult(), nil))

		assert.Equal(t, model.CategoryTechnicalSupport, store.records[0].Category)
		assert.Equal(t, "My invoice is wrong", store.records[0].Message)
	})

	t.Run("storage failure keeps the session reviewing", func(t *testing.T) {
		store := &fakeStore{failWith: common.NewStorageError("append", errors.New("disk full"))}
		sess := NewSession(store, nil)
		startReviewing(t, sess)

		_, err := sess.Save(context.Background())
		require.Error(t, err)

		var storageErr *common.StorageError
		assert.ErrorAs(t, err, &storageErr)
		assert.Equal(t, StateReviewing, sess.State(), "save must not optimistically transition")
		assert.Empty(t, store.records)

		// A retry after the store recovers succeeds.
		store.failWith = nil
		_, err = sess.Save(context.Background())
		require.NoError(t, err)
		assert.Equal(t, StateSaved, sess.State())
		assert.Len(t, store.records, 1)
	})

	t.Run("each save appends its own record", func(t *testing.T) {
		store := &fakeStore{}
		sess := NewSession(store, nil)

		startReviewing(t, sess)
		_, err := sess.Save(context.Background())
		require.NoError(t, err)
		first := store.records[0]

		require.NoError(t, sess.Clear())
		startReviewing(t, sess)
		_, err = sess.Save(context.Background())
		require.NoError(t, err)

		require.Len(t, store.records, 2)
		assert.Equal(t, first, store.records[0], "prior records are never mutated")
		assert.Greater(t, store.records[1].ID, store.records[0].ID)
	})

	t.Run("save is rejected outside reviewing", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)

		_, err := sess.Save(context.Background())
		var stateErr *StateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, StateIdle, stateErr.State)
	})
}

func TestSessionClear(t *testing.T) {
	t.Run("clear from reviewing and saved returns to idle", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)

		startReviewing(t, sess)
		require.NoError(t, sess.Clear())
		assert.Equal(t, StateIdle, sess.State())

		startReviewing(t, sess)
		_, err := sess.Save(context.Background())
		require.NoError(t, err)
		require.NoError(t, sess.Clear())
		assert.Equal(t, StateIdle, sess.State())
	})

	t.Run("clear while idle is a no-op", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)
		require.NoError(t, sess.Clear())
		assert.Equal(t, StateIdle, sess.State())
	})

	t.Run("clear is forbidden while analyzing", func(t *testing.T) {
		sess := NewSession(&fakeStore{}, nil)
		_, err := sess.Start("a message")
		require.NoError(t, err)

		var stateErr *StateError
		require.ErrorAs(t, sess.Clear(), &stateErr)
		assert.Equal(t, StateAnalyzing, sess.State())
	})
}

func TestSessionOptions(t *testing.T) {
	sess := NewSession(&fakeStore{}, nil)

	run, err := sess.Start("Please forward this to legal")
	require.NoError(t, err)

	novel := billingResult()
	novel.Category = "Legal Inquiry"
	require.True(t, sess.Finish(run, novel, nil))

	options := sess.CategoryOptions()
	assert.Equal(t, append(model.DefaultCategories(), "Legal Inquiry"), options)

	count := 0
	for _, o := range options {
		if o == "Legal Inquiry" {
			count++
		}
	}
	assert.Equal(t, 1, count, "a novel label appears exactly once")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "analyzing", StateAnalyzing.String())
	assert.Equal(t, "reviewing", StateReviewing.String())
	assert.Equal(t, "saved", StateSaved.String())
}
