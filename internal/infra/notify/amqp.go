package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher pushes events onto the durable booking events queue through
// the default exchange.
type AMQPPublisher struct {
	conn  *amqp.Connection
	queue string

	mu sync.Mutex
	ch *amqp.Channel
}

func NewAMQPPublisher(conn *amqp.Connection, cfg config.AMQPConfig) (*AMQPPublisher, error) {
	p := &AMQPPublisher{conn: conn, queue: cfg.Queue}
	if _, err := p.channel(); err != nil {
		return nil, err
	}
	return p, nil
}

// channel reopens the channel after the broker closed it. Callers hold mu or
// are the constructor.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "open amqp channel")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, errs.Wrap(err, "declare amqp queue")
	}
	p.ch = ch
	return ch, nil
}

func (p *AMQPPublisher) Deliver(ctx context.Context, ev shared.BookingEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode booking event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(ev.Type),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errs.Wrap(err, "publish booking event")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil || p.ch.IsClosed() {
		return nil
	}
	return p.ch.Close()
}

// Consumer drains the booking events queue into a Sink, normally the push
// fan-out. Messages are acked once handled, even when delivery to a browser
// failed, so a bad endpoint cannot wedge the queue.
type Consumer struct {
	conn     *amqp.Connection
	queue    string
	prefetch int
	sink     Sink

	cancel context.CancelFunc
	done   chan struct{}
}

func NewConsumer(conn *amqp.Connection, cfg config.AMQPConfig, sink Sink) *Consumer {
	return &Consumer{
		conn:     conn,
		queue:    cfg.Queue,
		prefetch: cfg.Prefetch,
		sink:     sink,
	}
}

func (c *Consumer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.run(ctx)
}

func (c *Consumer) Stop(ctx context.Context) error {
	if c.cancel == nil {
		return nil
	}
	c.cancel()
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Consumer) run(ctx context.Context) {
	defer close(c.done)

	backoff := time.Second
	for {
		err := c.consume(ctx)
		if ctx.Err() != nil {
			return
		}
		slog.Warn("booking event consumer stopped, reconnecting", "error", err, "backoff", backoff)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (c *Consumer) consume(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		slog.Warn("failed to set amqp prefetch", "error", err.Error())
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "declare amqp queue")
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "consume amqp queue")
	}

	for d := range deliveries {
		c.handle(ctx, d)
	}
	return errs.New("amqp deliveries channel closed")
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	var ev shared.BookingEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		slog.Error("discarding malformed booking event", "error", err.Error())
		_ = d.Nack(false, false)
		return
	}

	deliverCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()
	if err := c.sink.Deliver(deliverCtx, ev); err != nil {
		slog.Error("booking event delivery failed",
			"type", ev.Type,
			"booking_id", ev.BookingID.String(),
			"error", err.Error())
	}
	_ = d.Ack(false)
}
