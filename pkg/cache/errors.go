package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by the network-backed caches.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned for backend failures (timeouts, connection errors).
	ErrNetwork = errors.New("network error")
)

// Retry policy for the redis and mongo backends. A transient network
// fault during a preview lookup should not surface to the editor, so
// those operations retry briefly before giving up.
const (
	maxAttempts = 3
	baseDelay   = time.Second
)

// RetryableError marks an error as transient. Only marked errors trigger
// retries; anything else (bad key, decode failure) fails immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is marked transient anywhere in its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to maxAttempts times, doubling the delay
// between attempts. Context cancellation interrupts the wait.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	var lastErr error
	delay := baseDelay

	for attempt := 1; ; attempt++ {
		lastErr = fn()
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		if attempt == maxAttempts {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
