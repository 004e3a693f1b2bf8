// Package tui implements the interactive review interface for the triage
// workflow. All state transitions go through the session; the TUI is
// presentation glue.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/KevinNatera/l2assessment/internal/config"
	"github.com/KevinNatera/l2assessment/internal/session"
)

// Config holds the collaborators the review interface drives.
type Config struct {
	Context      context.Context
	Session      *session.Session
	Orchestrator *session.Orchestrator
	Seed         *config.SeedSource
}

// quickActions are the snippets an agent can append to the reply with one
// keystroke. Appends are additive and never replace the drafted reply.
var quickActions = []string{
	"Could you share a screenshot or the exact error text so we can dig in further?",
	"We've escalated this to a senior support engineer who will take over from here.",
	"You can find step-by-step instructions for this in our help center at https://support.example.com.",
}

// editValues holds the form state while the agent edits the result.
type editValues struct {
	category      string
	urgency       string
	action        string
	initialAction string
}

// Model is the bubbletea model for the review workflow.
type Model struct {
	cfg     Config
	err     error
	form    *huh.Form
	edits   *editValues
	status  string
	input   textarea.Model
	spin    spinner.Model
	keymap  KeyMap
	width   int
	height  int
	quitting bool
}

// NewModel creates the review model. A pending seed message, if any, is
// consumed into the input exactly once.
func NewModel(cfg Config) Model {
	input := textarea.New()
	input.Placeholder = "Paste the customer message here..."
	input.SetHeight(6)
	input.Focus()

	if cfg.Seed != nil {
		if seed, ok := cfg.Seed.Consume(); ok {
			input.SetValue(seed)
		}
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		cfg:    cfg,
		input:  input,
		spin:   spin,
		keymap: DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(msg.Width-4, 100))
		return m, nil

	case analysisDoneMsg:
		return m.handleAnalysisDone(msg)

	case clipboardDoneMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.status = "Reply copied to clipboard."
		}
		return m, nil

	case spinner.TickMsg:
		if m.cfg.Session.State() == session.StateAnalyzing {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open edit form owns the keyboard.
	if m.form != nil {
		return m.updateForm(msg)
	}

	if key.Matches(msg, m.keymap.Quit) && (msg.String() == "ctrl+c" || m.cfg.Session.State() != session.StateIdle) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.cfg.Session.State() {
	case session.StateIdle:
		return m.handleIdleKey(msg)
	case session.StateAnalyzing:
		// Input and controls are locked until the run finishes.
		return m, nil
	case session.StateReviewing:
		return m.handleReviewingKey(msg)
	case session.StateSaved:
		return m.handleSavedKey(msg)
	}

	return m, nil
}

func (m Model) handleIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Analyze) {
		return m.startAnalysis()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleReviewingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Edit):
		return m.openEditForm()

	case key.Matches(msg, m.keymap.QuickAction):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(quickActions) {
			if err := m.cfg.Session.AppendQuickAction(quickActions[idx]); err != nil {
				m.err = err
			} else {
				m.status = "Quick action appended."
				m.err = nil
			}
		}
		return m, nil

	case key.Matches(msg, m.keymap.Save):
		record, err := m.cfg.Session.Save(m.cfg.Context)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = "Saved to history at " + record.SavedAt.Format("15:04:05") + "."
		return m, nil

	case key.Matches(msg, m.keymap.Copy):
		return m, m.copyReplyCmd()

	case key.Matches(msg, m.keymap.Clear):
		return m.clearSession()
	}

	return m, nil
}

func (m Model) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Copy):
		return m, m.copyReplyCmd()
	case key.Matches(msg, m.keymap.Clear):
		return m.clearSession()
	}
	return m, nil
}

func (m Model) startAnalysis() (tea.Model, tea.Cmd) {
	text := m.input.Value()

	run, err := m.cfg.Session.Start(text)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.status = ""
	m.input.Blur()

	orch := m.cfg.Orchestrator
	ctx := m.cfg.Context
	analyze := func() tea.Msg {
		result, analyzeErr := orch.Analyze(ctx, text)
		return analysisDoneMsg{run: run, result: result, err: analyzeErr}
	}

	return m, tea.Batch(m.spin.Tick, analyze)
}

func (m Model) handleAnalysisDone(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	applied := m.cfg.Session.Finish(msg.run, msg.result, msg.err)
	if !applied {
		// Stale response from a superseded run; nothing to show.
		return m, nil
	}

	if msg.err != nil {
		m.err = msg.err
		m.input.Focus()
		return m, textarea.Blink
	}

	m.err = nil
	m.status = "Analysis complete. Review the suggestions below."
	return m, nil
}

func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	result, ok := m.cfg.Session.Result()
	if !ok {
		return m, nil
	}

	edits := &editValues{
		category:      result.Category,
		urgency:       result.Urgency,
		action:        result.RecommendedAction,
		initialAction: result.RecommendedAction,
	}

	categoryOptions := make([]huh.Option[string], 0)
	for _, c := range m.cfg.Session.CategoryOptions() {
		categoryOptions = append(categoryOptions, huh.NewOption(c, c))
	}
	urgencyOptions := make([]huh.Option[string], 0)
	for _, u := range m.cfg.Session.UrgencyOptions() {
		urgencyOptions = append(urgencyOptions, huh.NewOption(u, u))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&edits.category),

			huh.NewSelect[string]().
				Title("Urgency").
				Options(urgencyOptions...).
				Value(&edits.urgency),

			huh.NewText().
				Title("Recommended reply").
				Value(&edits.action),
		),
	)

	m.form = form
	m.edits = edits

	return m, form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyEdits()
		m.form = nil
		m.edits = nil
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.edits = nil
		return m, nil
	default:
		return m, cmd
	}
}

// applyEdits routes the form values through the session guards. The
// category is applied first because picking a new category swaps in its
// template; an action the agent typed in the form wins over the template.
func (m *Model) applyEdits() {
	sess := m.cfg.Session

	if err := sess.EditCategory(m.edits.category); err != nil {
		m.err = err
		return
	}
	if err := sess.EditUrgency(m.edits.urgency); err != nil {
		m.err = err
		return
	}
	if m.edits.action != m.edits.initialAction {
		if err := sess.EditAction(m.edits.action); err != nil {
			m.err = err
			return
		}
	}

	m.err = nil
	m.status = "Edits applied."
}

func (m Model) clearSession() (tea.Model, tea.Cmd) {
	if err := m.cfg.Session.Clear(); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.status = ""
	m.input.Reset()
	m.input.Focus()
	return m, textarea.Blink
}

func (m Model) copyReplyCmd() tea.Cmd {
	result, ok := m.cfg.Session.Result()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return clipboardDoneMsg{err: clipboard.WriteAll(result.RecommendedAction)}
	}
}
