package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 100 * time.Millisecond
	queryTimeout   = 5 * time.Second
)

// withRetry runs a single query with a per-attempt timeout, retrying
// transient failures with exponential backoff. Not-found is a result, not a
// failure, so it returns immediately.
func withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		opCtx, cancel := context.WithTimeout(ctx, queryTimeout)
		err = op(opCtx)
		cancel()
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if attempt == retryAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBaseDelay << attempt):
		}
	}
	return err
}
