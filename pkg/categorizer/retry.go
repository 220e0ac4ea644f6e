package categorizer

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxAttempts is the total number of attempts, not the number
	// of retries after the first failure.
	DefaultMaxAttempts = 3
)

// RetryController wraps a provider call with a per-attempt wall-clock
// timeout and bounded exponential backoff.
//
// A timed-out attempt fails immediately with *TimeoutError and is not
// retried: an unresponsive provider will most likely time out again, and
// stacking sleeps on top of full timeouts makes latency unpredictable. Any
// other failure is retried with a 2^attempt second backoff until the attempt
// budget is spent, at which point the last error is wrapped in *APIError.
type RetryController struct {
	Timeout     time.Duration
	MaxAttempts int

	// sleep is swappable so tests can observe backoff without waiting.
	sleep func(time.Duration)
}

// NewRetryController returns a controller with the given per-attempt timeout
// and attempt budget. Non-positive arguments fall back to the defaults.
func NewRetryController(timeout time.Duration, maxAttempts int) *RetryController {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &RetryController{
		Timeout:     timeout,
		MaxAttempts: maxAttempts,
		sleep:       time.Sleep,
	}
}

// Do runs op under the controller's policy and returns its result.
// The provider name is only used for error reporting and log context.
func (r *RetryController) Do(ctx context.Context, provider string, op func(ctx context.Context) (string, error)) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, r.Timeout)
		out, err := op(attemptCtx)
		cancel()

		if err == nil {
			return out, nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{Provider: provider, Timeout: r.Timeout}
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		lastErr = err
		if attempt == r.MaxAttempts {
			break
		}

		delay := time.Duration(1<<uint(attempt)) * time.Second
		log.Warnf("%s call failed (attempt %d/%d), retrying in %s: %v", provider, attempt, r.MaxAttempts, delay, err)
		r.sleep(delay)
	}

	return "", &APIError{Provider: provider, Attempts: r.MaxAttempts, Err: lastErr}
}
