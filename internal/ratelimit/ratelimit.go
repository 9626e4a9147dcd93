// Package ratelimit provides per-client request throttling for the validation
// endpoints using a sliding window.
package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of a rate limit check.
type Result struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
}

// Store tracks request counts per key over a sliding window. Implementations
// must be safe for concurrent use.
type Store interface {
	// Allow records a request against key if it fits within limit over window,
	// and reports the resulting state either way.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)
	// Reset clears the counter for a key.
	Reset(ctx context.Context, key string) error
}
