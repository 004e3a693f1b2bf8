package provider

import (
	"context"

	"github.com/KevinNatera/l2assessment/internal/common"
	"github.com/KevinNatera/l2assessment/internal/service"
)

// retryingCategorizer wraps a categorizer with retry behavior for transient
// network failures.
type retryingCategorizer struct {
	inner Categorizer
	opts  service.RetryOptions
}

// WithRetry wraps a categorizer so transient failures are retried with
// exponential backoff.
func WithRetry(inner Categorizer, opts service.RetryOptions) Categorizer {
	return &retryingCategorizer{inner: inner, opts: opts}
}

func (r *retryingCategorizer) Categorize(ctx context.Context, message string) (Categorization, error) {
	var result Categorization

	err := common.WithRetry(ctx, func() error {
		var opErr error
		result, opErr = r.inner.Categorize(ctx, message)
		return opErr
	}, r.opts)
	if err != nil {
		return Categorization{}, err
	}

	return result, nil
}
