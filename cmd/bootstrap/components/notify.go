package components

import (
	"context"
	"log/slog"

	"studio-booking/internal/infra/notify"
	"studio-booking/internal/infra/readstore"
	"studio-booking/internal/infra/repository"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewPushSender,
		NewFanout,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewPushSender(cfg config.Config) notify.PushSender {
	if !cfg.Push.Enabled() {
		slog.Info("VAPID keys not set, web push disabled")
		return notify.DisabledSender{}
	}
	return notify.NewWebPushSender(cfg.Push)
}

func NewFanout(subs *readstore.PushSubscriptionReadStore, repo *repository.PushSubscriptionRepository, db sqlc.DBTX, sender notify.PushSender) *notify.Fanout {
	return notify.NewFanout(subs, notify.NewPoolRemover(repo, db), sender)
}

// NewDispatcher queues events off the request path. With a broker the queue
// feeds the AMQP publisher and a consumer drives the fan-out; without one the
// fan-out runs directly behind the queue.
func NewDispatcher(lc fx.Lifecycle, cfg config.Config, conn *amqp.Connection, fanout *notify.Fanout) (*notify.Dispatcher, error) {
	if conn == nil {
		d := notify.NewDispatcher(fanout, cfg.AMQP.QueueSize, cfg.AMQP.Workers)
		lc.Append(dispatcherHook(d))
		return d, nil
	}

	publisher, err := notify.NewAMQPPublisher(conn, cfg.AMQP)
	if err != nil {
		return nil, err
	}
	consumer := notify.NewConsumer(conn, cfg.AMQP, fanout)
	d := notify.NewDispatcher(publisher, cfg.AMQP.QueueSize, cfg.AMQP.Workers)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			consumer.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return consumer.Stop(ctx)
		},
	})
	lc.Append(dispatcherHook(d))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return d, nil
}

func dispatcherHook(d *notify.Dispatcher) fx.Hook {
	return fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	}
}
