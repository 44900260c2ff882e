package retry

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
)

// Op represents an operation that can be retried
type Op func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxAttempts int                // Total attempts including the first
	Delay       time.Duration      // Fixed delay between attempts
	Retryable   func(error) bool   // Determines if an error is worth retrying
}

// StoreConfig is the persistence retry policy: up to 3 attempts with a
// fixed 1 second delay, retrying transient transport failures only.
// Non-transient errors propagate on first occurrence.
func StoreConfig() Config {
	return Config{
		MaxAttempts: 3,
		Delay:       time.Second,
		Retryable:   apperrors.IsTransient,
	}
}

// Retrier executes operations under a bounded retry policy
type Retrier struct {
	config Config
}

// New creates a retrier with the given configuration
func New(config Config) *Retrier {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.Retryable == nil {
		config.Retryable = func(error) bool { return true }
	}
	return &Retrier{config: config}
}

// Do executes the operation, retrying per the configured policy
func (r *Retrier) Do(ctx context.Context, op Op) error {
	var lastErr error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := op(ctx)
		if err == nil {
			if attempt > 1 {
				logger.Info("operation succeeded after retries",
					logger.Int("attempt", attempt))
			}
			return nil
		}

		lastErr = err

		if !r.config.Retryable(err) {
			return err
		}

		if attempt == r.config.MaxAttempts {
			break
		}

		logger.Debug("operation failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt),
			logger.Duration("delay", r.config.Delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.config.Delay):
		}
	}

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxAttempts, lastErr)
}
