// Package retry provides the single retry policy used for every record
// store call, replacing ad hoc per-call-site retry loops.
package retry

import (
	"context"
	"errors"
	"time"

	backoff "github.com/sethvargo/go-retry"

	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
)

// Policy describes how transient record store failures are retried: up to
// MaxAttempts calls with a linear BaseDelay×attempt backoff, retrying only
// errors the Retryable predicate accepts. Non-retryable errors propagate
// immediately.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Retryable   func(error) bool
}

// DefaultPolicy mirrors the client's historical behavior: three attempts,
// one-second base delay, retrying only rate-limited errors.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Retryable: func(err error) bool {
			return errors.Is(err, apperrors.ErrRateLimited)
		},
	}
}

// Do runs fn, retrying per the policy. The last error is returned once
// attempts are exhausted.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	b := backoff.WithMaxRetries(uint64(attempts-1), linearBackoff(p.BaseDelay))

	return backoff.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && p.Retryable != nil && p.Retryable(err) {
			return backoff.RetryableError(err)
		}
		return err
	})
}

// linearBackoff waits base×1, base×2, base×3... between attempts.
func linearBackoff(base time.Duration) backoff.Backoff {
	attempt := 0
	return backoff.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return base * time.Duration(attempt), false
	})
}
