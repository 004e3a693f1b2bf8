package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KevinNatera/l2assessment/internal/session"
)

// View renders the review interface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Support Triage"))
	b.WriteString("\n")

	switch m.cfg.Session.State() {
	case session.StateIdle:
		b.WriteString(m.viewIdle())
	case session.StateAnalyzing:
		b.WriteString(m.viewAnalyzing())
	case session.StateReviewing, session.StateSaved:
		b.WriteString(m.viewReview())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return b.String()
}

func (m Model) viewIdle() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%d characters", len([]rune(m.input.Value())))))

	return b.String()
}

func (m Model) viewAnalyzing() string {
	return m.spin.View() + " Analyzing message..."
}

func (m Model) viewReview() string {
	if m.form != nil {
		return m.form.View()
	}

	result, ok := m.cfg.Session.Result()
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(boxStyle.Render(result.Message))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Category: "))
	b.WriteString(result.Category)
	b.WriteString(" ")
	b.WriteString(m.matchBadge(m.cfg.Session.CategoryMatches()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Urgency:  "))
	b.WriteString(result.Urgency)
	b.WriteString(" ")
	b.WriteString(m.matchBadge(m.cfg.Session.UrgencyMatches()))
	b.WriteString("\n\n")

	if result.Reasoning != "" {
		b.WriteString(labelStyle.Render("Reasoning"))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(result.Reasoning))
		b.WriteString("\n\n")
	}

	b.WriteString(labelStyle.Render("Recommended reply"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(result.RecommendedAction))

	if m.cfg.Session.State() == session.StateSaved {
		b.WriteString("\n")
		b.WriteString(matchedStyle.Render("✓ Saved"))
	}

	return b.String()
}

func (m Model) matchBadge(matches bool) string {
	if matches {
		return matchedStyle.Render("✓ AI")
	}
	return editedStyle.Render("✎ edited")
}

func (m Model) viewHelp() string {
	var entries []string

	switch m.cfg.Session.State() {
	case session.StateIdle:
		entries = []string{"ctrl+a analyze", "ctrl+c quit"}
	case session.StateAnalyzing:
		entries = []string{"ctrl+c quit"}
	case session.StateReviewing:
		entries = []string{"e edit", "1-3 quick action", "s save", "y copy", "c clear", "q quit"}
	case session.StateSaved:
		entries = []string{"c new message", "y copy", "q quit"}
	}

	return subtleStyle.Render(strings.Join(entries, lipgloss.NewStyle().Render("  •  ")))
}
