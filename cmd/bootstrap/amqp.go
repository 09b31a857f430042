package bootstrap

import (
	"context"
	"log/slog"

	"studio-booking/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewAMQPConnection,
	),
)

// NewAMQPConnection returns nil when AMQP_URL is unset; notifications are then
// delivered in-process.
func NewAMQPConnection(lc fx.Lifecycle, cfg config.Config) (*amqp.Connection, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, delivering notifications in-process")
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if conn.IsClosed() {
				return nil
			}
			return conn.Close()
		},
	})

	return conn, nil
}
