package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"goalkick/internal/usecase/commands"
)

// Sink delivers one event to an external channel.
type Sink interface {
	Name() string
	Publish(ctx context.Context, e commands.Event) error
}

type Hooks struct {
	Dropped   func()
	Delivered func(sink string, err error)
}

// Dispatcher queues events and delivers them to every sink from a single
// worker. Notify never blocks: when the queue is full the event is dropped.
type Dispatcher struct {
	queue   chan commands.Event
	sinks   []Sink
	timeout time.Duration
	hooks   Hooks
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

var _ commands.Notifier = (*Dispatcher)(nil)

func NewDispatcher(queueSize int, timeout time.Duration, hooks Hooks, sinks ...Sink) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	d := &Dispatcher{
		queue:   make(chan commands.Event, queueSize),
		sinks:   sinks,
		timeout: timeout,
		hooks:   hooks,
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Notify(_ context.Context, e commands.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(e, "dispatcher closed")
		return
	}

	select {
	case d.queue <- e:
	default:
		d.drop(e, "queue full")
	}
}

func (d *Dispatcher) drop(e commands.Event, reason string) {
	slog.Warn("notification dropped",
		"reason", reason,
		"type", e.Type,
		"ticket_id", e.TicketID)
	if d.hooks.Dropped != nil {
		d.hooks.Dropped()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.queue {
		for _, s := range d.sinks {
			d.deliver(s, e)
		}
	}
}

func (d *Dispatcher) deliver(s Sink, e commands.Event) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	err := s.Publish(ctx, e)
	if err != nil {
		slog.Warn("notification delivery failed",
			"sink", s.Name(),
			"type", e.Type,
			"ticket_id", e.TicketID,
			"error", err)
	}
	if d.hooks.Delivered != nil {
		d.hooks.Delivered(s.Name(), err)
	}
}

// Close stops accepting events and waits for the queue to drain or ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogSink writes events to the structured log. Used when no external sink
// is configured.
type LogSink struct{}

func (LogSink) Name() string { return "log" }

func (LogSink) Publish(_ context.Context, e commands.Event) error {
	slog.Info("notification",
		"type", e.Type,
		"ticket_id", e.TicketID,
		"match", e.Match,
		"quantity", e.Quantity,
		"amount", e.Amount.String())
	return nil
}
