package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the review interface and blocks until the user quits.
func Run(cfg Config) error {
	program := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithContext(cfg.Context))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("review interface failed: %w", err)
	}

	return nil
}
