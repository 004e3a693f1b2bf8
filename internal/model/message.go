// Package model defines the core domain models used throughout the application.
package model

import "strings"

// Message is the raw customer message a session works on.
type Message struct {
	Text string
}

// Length returns the display length of the message in runes.
func (m Message) Length() int {
	return len([]rune(m.Text))
}

// IsEmpty reports whether the message contains no analyzable text.
func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Text) == ""
}
