// Package notify delivers booking events to staff browsers. Delivery is
// asynchronous and best-effort: nothing here can fail a booking command.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"studio-booking/internal/usecase/shared"
)

const deliveryTimeout = 10 * time.Second

// Sink is the next hop for an event: the broker, or the push fan-out when no
// broker is configured.
type Sink interface {
	Deliver(ctx context.Context, ev shared.BookingEvent) error
}

// Dispatcher implements shared.Notifier over a bounded queue drained by a
// fixed set of workers.
type Dispatcher struct {
	sink    Sink
	queue   chan shared.BookingEvent
	workers int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(sink Sink, queueSize, workers int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &Dispatcher{
		sink:    sink,
		queue:   make(chan shared.BookingEvent, queueSize),
		workers: workers,
	}
}

// Notify never blocks. Events are dropped and logged when the queue is full
// or the dispatcher has been stopped.
func (d *Dispatcher) Notify(_ context.Context, ev shared.BookingEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("notification dropped after shutdown", "type", ev.Type, "booking_id", ev.BookingID.String())
		return
	}

	select {
	case d.queue <- ev:
	default:
		slog.Warn("notification queue full, dropping event", "type", ev.Type, "booking_id", ev.BookingID.String())
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
}

// Stop closes the queue and waits for queued events to drain or ctx to end.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev shared.BookingEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("notification delivery panicked", "type", ev.Type, "panic", r)
		}
	}()

	if err := d.sink.Deliver(ctx, ev); err != nil {
		slog.Error("notification delivery failed",
			"type", ev.Type,
			"booking_id", ev.BookingID.String(),
			"error", err.Error())
	}
}
