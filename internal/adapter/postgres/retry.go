package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// RetryPolicy bounds how often a contended transaction is re-run.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy is used when a TxManager is built without options.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   10 * time.Millisecond,
		MaxDelay:    200 * time.Millisecond,
	}
}

// retry runs fn until it succeeds, fails with a non-retryable error, or the
// attempt budget is spent. Exhaustion is reported as domain.ErrConflict.
// Delays double after each attempt and are capped at MaxDelay.
func retry(ctx context.Context, p RetryPolicy, fn func(attempt int) error) error {
	attempts := max(p.MaxAttempts, 1)
	delay := p.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn(attempt)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}

	return fmt.Errorf("gave up after %d attempts (%v): %w", attempts, lastErr, domain.ErrConflict)
}
