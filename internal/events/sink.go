package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Bus is the subscription side of the event bus.
type Bus interface {
	WaitReady(ctx context.Context) error
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// LogSink renders game events as a sequential human-readable log, one line
// per event in arrival order. This is the process's observable output.
// WaitReady unblocks only after the subscription is live; publishers must
// gate on it, since the bus delivers nothing published before a
// subscription exists.
type LogSink struct {
	bus   Bus
	ready chan struct{}

	mu sync.Mutex
	w  io.Writer
}

// NewLogSink creates a sink writing to w.
func NewLogSink(bus Bus, w io.Writer) *LogSink {
	return &LogSink{
		bus:   bus,
		ready: make(chan struct{}),
		w:     w,
	}
}

// Start subscribes to all game events and blocks until ctx is done.
func (s *LogSink) Start(ctx context.Context) error {
	if err := s.bus.WaitReady(ctx); err != nil {
		return fmt.Errorf("waiting for event bus: %w", err)
	}

	unsubscribe, err := s.bus.Subscribe(SubjectAll, s.handle)
	if err != nil {
		return fmt.Errorf("subscribing to %q: %w", SubjectAll, err)
	}
	defer unsubscribe()
	close(s.ready)

	slog.InfoContext(ctx, "event log sink started")

	<-ctx.Done()
	return nil
}

// WaitReady blocks until the sink is observing events.
func (s *LogSink) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *LogSink) handle(data []byte) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		slog.Warn("decoding event", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, ev.Message)
}
