package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// OpEvent describes one completed service operation: what ran, how long it
// took, and whether it failed.
type OpEvent struct {
	Op      string
	Started time.Time
	Elapsed time.Duration
	Err     error
	Attrs   map[string]any
}

// Observer receives an OpEvent after each observed service operation.
type Observer interface {
	Observe(ctx context.Context, ev OpEvent)
}

type noopObserver struct{}

func (noopObserver) Observe(context.Context, OpEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns an Observer that writes one slog line per
// operation to w. Failures log at error level with the cause attached.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return noopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(ctx context.Context, ev OpEvent) {
	attrs := make([]any, 0, 6+len(ev.Attrs)*2)
	attrs = append(attrs,
		"op", ev.Op,
		"elapsed_ms", ev.Elapsed.Milliseconds(),
	)
	for k, v := range ev.Attrs {
		attrs = append(attrs, k, v)
	}
	if ev.Err != nil {
		attrs = append(attrs, "error", ev.Err.Error())
		o.logger.ErrorContext(ctx, "op_failed", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "op_done", attrs...)
}

// firstObserver picks the first non-nil observer, or a noop.
func firstObserver(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return noopObserver{}
}
