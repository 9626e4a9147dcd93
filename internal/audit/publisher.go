package audit

import (
	"context"
	"log/slog"
	"time"
)

// Sink receives audit events. Implementations must be safe for concurrent
// appends.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher hands events to a background worker through a bounded inbox.
// Validation audit is operational, not compliance-grade: when the inbox is
// full the event is dropped and counted rather than blocking the request
// path.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

// NewPublisher creates a publisher with the given inbox capacity.
func NewPublisher(logger *slog.Logger, capacity int) *Publisher {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Publisher{
		inbox:  make(chan Event, capacity),
		logger: logger,
	}
}

// Emit enqueues an event, stamping it if the caller did not.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"kind", event.Kind,
			"outcome", event.Outcome,
		)
	}
}

// Inbox exposes the receive side for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
