// Package retry runs an operation with exponential backoff and jitter.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Config holds retry configuration.
type Config struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
	// JitterFraction is the +/- fraction of the backoff added as jitter.
	JitterFraction float64
}

// DefaultConfig returns the backoff used for metadata requests.
func DefaultConfig(retries int) Config {
	return Config{
		MaxRetries:     max(retries, 0),
		InitialBackoff: 300 * time.Millisecond,
		MaxBackoff:     3 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.2,
	}
}

// Classifier reports whether an error is worth another attempt.
type Classifier func(error) bool

// ErrPermanent marks an error that must not be retried.
var ErrPermanent = errors.New("permanent error")

// Permanent wraps err so Do returns it without retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// IsRetryable retries everything except context errors and permanent errors.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !errors.Is(err, ErrPermanent)
}

// Do calls fn until it succeeds, the classifier rejects the error, the
// attempts are exhausted or ctx is done.
func Do(ctx context.Context, cfg Config, classify Classifier, fn func(context.Context) error) error {
	if classify == nil {
		classify = IsRetryable
	}

	var lastErr error
	backoff := cfg.InitialBackoff

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if !classify(err) {
			return err
		}
		if attempt == cfg.MaxRetries {
			break
		}

		sleep := backoff + jitter(backoff, cfg.JitterFraction)
		if cfg.MaxBackoff > 0 && sleep > cfg.MaxBackoff {
			sleep = cfg.MaxBackoff
		}

		timer := time.NewTimer(sleep)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}

		backoff = time.Duration(float64(backoff) * cfg.Multiplier)
		if cfg.MaxBackoff > 0 && backoff > cfg.MaxBackoff {
			backoff = cfg.MaxBackoff
		}
	}

	if cfg.MaxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func jitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 {
		return 0
	}
	jitterRange := float64(d) * fraction
	return time.Duration((rand.Float64() - 0.5) * 2 * jitterRange)
}
