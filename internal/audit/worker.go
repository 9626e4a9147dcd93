package audit

import (
	"context"
	"log/slog"
)

// Worker drains the publisher inbox into a sink. Sink failures are logged and
// the worker keeps going; a flaky broker must not wedge validation traffic.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run processes events until the context is canceled, then drains whatever is
// already queued before returning.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.append(ctx, event)
		}
	}
}

func (w *Worker) drain() {
	// Shutdown path: use a fresh context so queued events still get a chance
	// to flush.
	ctx := context.Background()
	for {
		select {
		case event := <-w.inbox:
			w.append(ctx, event)
		default:
			return
		}
	}
}

func (w *Worker) append(ctx context.Context, event Event) {
	if err := w.sink.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "failed to append audit event",
			"kind", event.Kind,
			"outcome", event.Outcome,
			"error", err,
		)
	}
}
