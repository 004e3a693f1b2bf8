package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KevinNatera/l2assessment/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidRecord = errors.New("invalid history record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecord validates a history record before it is persisted.
func validateRecord(record *model.HistoryRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if strings.TrimSpace(record.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidRecord)
	}
	if record.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidRecord)
	}
	if record.Urgency == "" {
		return fmt.Errorf("%w: urgency is required", ErrInvalidRecord)
	}
	if record.SavedAt.IsZero() {
		return fmt.Errorf("%w: saved_at is required", ErrInvalidRecord)
	}
	return nil
}
