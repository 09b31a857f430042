package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"studio-booking/internal/infra/ratelimit"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewRateLimiter,
	),
)

// NewRedisClient returns nil when REDIS_URL is unset; rate limiting is then
// disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		slog.Info("REDIS_URL not set, rate limiting disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				// the limiter fails open, so an unreachable Redis is not fatal
				slog.Warn("redis ping failed", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewRateLimiter(client *redis.Client, cfg config.Config, clk clock.Clock) ratelimit.Limiter {
	if client == nil {
		return ratelimit.Unlimited{}
	}
	return ratelimit.NewRedisLimiter(client, cfg.RateLimit, clk)
}
