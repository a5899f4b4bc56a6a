package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager manages database transactions using the context pattern.
// A RunInTx call made inside another RunInTx callback joins the outer
// transaction; retries and commit belong to the outermost call.
type TxManager struct {
	pool        *pgxpool.Pool
	policy      RetryPolicy
	lockTimeout time.Duration
	log         *slog.Logger
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithRetryPolicy sets how contended transactions are retried.
func WithRetryPolicy(p RetryPolicy) TxOption {
	return func(m *TxManager) { m.policy = p }
}

// WithLockTimeout bounds how long a statement waits for a row lock.
func WithLockTimeout(d time.Duration) TxOption {
	return func(m *TxManager) { m.lockTimeout = d }
}

// WithLogger sets the logger used to report retries.
func WithLogger(l *slog.Logger) TxOption {
	return func(m *TxManager) { m.log = l }
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{
		pool:   pool,
		policy: DefaultRetryPolicy(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default); writers that need
// serialization take row locks explicitly.
// On success: commits.
// On error from fn: rolls back. Serialization failures, deadlocks and lock
// timeouts re-run fn in a fresh transaction; when the retry budget is spent
// the error matches domain.ErrConflict.
// On panic from fn: rolls back and re-panics.
// When ctx already carries a transaction fn runs in it directly.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}
	return retry(ctx, m.policy, func(attempt int) error {
		if attempt > 1 {
			m.log.WarnContext(ctx, "retrying transaction", slog.Int("attempt", attempt))
		}
		return m.runOnce(ctx, fn)
	})
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if m.lockTimeout > 0 {
		// SET does not accept bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", m.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("set lock_timeout: %w", err)
		}
	}

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
