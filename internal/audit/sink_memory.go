package audit

import (
	"context"
	"sync"
)

// MemorySink is an in-process ring of recent events. It is the default sink
// when no broker is configured and the swap-in target for tests.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
	limit  int
}

// NewMemorySink creates a sink retaining at most limit events (oldest evicted
// first).
func NewMemorySink(limit int) *MemorySink {
	if limit <= 0 {
		limit = 4096
	}
	return &MemorySink{limit: limit}
}

func (s *MemorySink) Append(ctx context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.limit {
		s.events = s.events[len(s.events)-s.limit:]
	}
	return nil
}

// Events returns a copy of the retained events.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
