package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SeedSource is the one-shot channel another tool can use to pre-populate
// the message input for the next review session. The slot is a file under
// the state directory; consuming it removes the file so the value is never
// reapplied.
type SeedSource struct {
	path string
}

// NewSeedSource creates a seed source rooted at the given state directory.
func NewSeedSource(stateDir string) *SeedSource {
	return &SeedSource{path: filepath.Join(stateDir, "seed")}
}

// Write stores a message in the seed slot, replacing any previous value.
func (s *SeedSource) Write(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("seed message cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(message), 0600); err != nil {
		return fmt.Errorf("failed to write seed: %w", err)
	}

	return nil
}

// Consume reads and clears the seed slot. The second return is false when
// no seed is pending. A slot that cannot be removed is treated as empty
// rather than risking the value being applied twice.
func (s *SeedSource) Consume() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	if err := os.Remove(s.path); err != nil {
		return "", false
	}

	message := strings.TrimSpace(string(data))
	if message == "" {
		return "", false
	}

	return message, true
}
