// Package service defines the interfaces shared between application layers.
package service

import (
	"context"
	"time"

	"github.com/KevinNatera/l2assessment/internal/model"
)

// HistoryStore defines the contract for the persistence layer. Records are
// append-only: no record is ever mutated or deleted, and List returns them
// in insertion order.
type HistoryStore interface {
	Append(ctx context.Context, record *model.HistoryRecord) error
	List(ctx context.Context) ([]model.HistoryRecord, error)
	Count(ctx context.Context) (int, error)
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
