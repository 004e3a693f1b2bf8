// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input validation errors.
	ErrEmptyMessage = errors.New("message is empty")

	// Provider errors.
	ErrCategorization = errors.New("categorization failed")
	ErrUrgencyScoring = errors.New("urgency scoring failed")

	// Storage errors.
	ErrStoreUnavailable = errors.New("history store unavailable")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRateLimit indicates that a provider API rate limit has been exceeded.
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrMaxRetries indicates that all retry attempts have been exhausted.
	ErrMaxRetries = errors.New("max retries exceeded")
)

// ValidationError indicates rejected user input. The session stays where it
// is; the user corrects the input and retries.
type ValidationError struct {
	Err    error
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a user-facing reason.
func NewValidationError(reason string, err error) error {
	return &ValidationError{Reason: reason, Err: err}
}

// AnalysisError indicates a provider failure during an analysis run. The run
// aborts with no partial result and the session returns to idle.
type AnalysisError struct {
	Err   error
	Stage string
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed during %s: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError wraps a provider failure with the stage it occurred in.
func NewAnalysisError(stage string, err error) error {
	return &AnalysisError{Stage: stage, Err: err}
}

// StorageError indicates a persistence failure. The session remains in
// review so the user may retry the save.
type StorageError struct {
	Err error
	Op  string
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps a persistence failure with the operation name.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// RetryableError wraps an error with retry-specific metadata.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
