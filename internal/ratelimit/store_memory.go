package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store with an in-process sliding window. It is the
// default for single-instance deployments; use RedisStore when running more
// than one replica.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*slidingWindow
}

// slidingWindow tracks request timestamps. Expired entries are pruned on each
// access, so the window never grows past the limit plus in-flight checks.
type slidingWindow struct {
	timestamps []time.Time
	window     time.Duration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*slidingWindow)}
}

func (s *MemoryStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sw := s.windows[key]
	if sw == nil {
		sw = &slidingWindow{window: window}
		s.windows[key] = sw
	}
	sw.prune(now)

	if len(sw.timestamps) >= limit {
		resetAt := sw.timestamps[0].Add(window)
		return &Result{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfterSeconds(now, resetAt),
		}, nil
	}

	sw.timestamps = append(sw.timestamps, now)
	return &Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(sw.timestamps),
		ResetAt:   sw.timestamps[0].Add(window),
	}, nil
}

func (s *MemoryStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, key)
	return nil
}

func (sw *slidingWindow) prune(now time.Time) {
	cutoff := now.Add(-sw.window)
	i := 0
	for ; i < len(sw.timestamps); i++ {
		if sw.timestamps[i].After(cutoff) {
			break
		}
	}
	sw.timestamps = sw.timestamps[i:]
}

func retryAfterSeconds(now, resetAt time.Time) int {
	secs := int(time.Until(resetAt).Round(time.Second).Seconds())
	if resetAt.After(now) && secs < 1 {
		secs = 1
	}
	if secs < 0 {
		secs = 0
	}
	return secs
}
