package categorizer

import (
	"fmt"
	"time"
)

// ConfigurationError reports an invalid client configuration. It is returned
// at construction time only; a client that constructed successfully never
// returns it.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("categorizer: invalid configuration for %s: %s", e.Field, e.Reason)
}

// TimeoutError reports that a single provider call exceeded its wall-clock
// budget. Timeouts are never retried.
type TimeoutError struct {
	Provider string
	Timeout  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("categorizer: %s call timed out after %s", e.Provider, e.Timeout)
}

// APIError reports that the provider call failed after all permitted
// attempts, or that its response could not be parsed into a valid result.
type APIError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *APIError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("categorizer: %s call failed after %d attempts: %v", e.Provider, e.Attempts, e.Err)
	}
	return fmt.Sprintf("categorizer: %s call failed: %v", e.Provider, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// ParseError reports that a mandatory field could not be extracted from the
// raw model response.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "categorizer: " + e.Msg }
