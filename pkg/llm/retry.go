package llm

import (
	"context"
	"errors"
	"time"
)

// RetryCaller wraps a provider call and retries it when the backend
// answers with a rate limit. Each retry waits attempt*2 base units
// before trying again. Any other error aborts immediately.
type RetryCaller struct {
	maxAttempts int
	base        time.Duration
	sleep       func(time.Duration)
}

func NewRetryCaller() *RetryCaller {
	return &RetryCaller{
		maxAttempts: 3,
		base:        time.Second,
		sleep:       time.Sleep,
	}
}

// NewRetryCallerWith lets tests inject the base unit and sleep function.
func NewRetryCallerWith(maxAttempts int, base time.Duration, sleep func(time.Duration)) *RetryCaller {
	return &RetryCaller{
		maxAttempts: maxAttempts,
		base:        base,
		sleep:       sleep,
	}
}

// Do runs fn up to maxAttempts times. It returns the result and true on
// success, or ("", false) when every attempt was rate limited or the
// call failed for another reason.
func (r *RetryCaller) Do(ctx context.Context, fn func(ctx context.Context) (string, error)) (string, bool) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, true
		}

		var rateErr *RateLimitError
		if !errors.As(err, &rateErr) {
			return "", false
		}
		if attempt == r.maxAttempts {
			return "", false
		}
		r.sleep(time.Duration(attempt*2) * r.base)
	}
	return "", false
}
