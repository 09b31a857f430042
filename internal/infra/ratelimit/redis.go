package ratelimit

import (
	"context"
	"math"
	"strconv"
	"time"

	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "studio:ratelimit:"

// Each key holds a token count and the last refill time in milliseconds.
// Tokens refill continuously at rate per second up to burst.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local burst = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
  tokens = burst
  ts = now_ms
end

local elapsed = math.max(0, now_ms - ts)
tokens = math.min(burst, tokens + elapsed * rate / 1000)

local allowed = 0
local retry_ms = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
else
  retry_ms = math.ceil((1 - tokens) * 1000 / rate)
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'ts', now_ms)
redis.call('EXPIRE', key, ttl)
return {allowed, math.floor(tokens), retry_ms}
`)

type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter is implemented by RedisLimiter; handlers depend on this so tests
// can run without Redis.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

type RedisLimiter struct {
	client redis.Scripter
	rate   float64
	burst  int
	clock  clock.Clock
}

func NewRedisLimiter(client redis.Scripter, cfg config.RateLimitConfig, clk clock.Clock) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		rate:   cfg.Rate,
		burst:  cfg.Burst,
		clock:  clk,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	if l.rate <= 0 || l.burst <= 0 {
		return Result{Allowed: true, Limit: l.burst, Remaining: l.burst}, nil
	}

	ttl := int64(math.Ceil(float64(l.burst)/l.rate)) + 1
	vals, err := tokenBucket.Run(ctx, l.client, []string{keyPrefix + key},
		l.clock.Now().UnixMilli(), l.rate, l.burst, ttl).Int64Slice()
	if err != nil {
		return Result{}, errs.Wrap(err, "run rate limit script")
	}
	if len(vals) != 3 {
		return Result{}, errs.New("unexpected rate limit script result: " + strconv.Itoa(len(vals)) + " values")
	}

	return Result{
		Allowed:    vals[0] == 1,
		Limit:      l.burst,
		Remaining:  int(vals[1]),
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}

// Unlimited always allows; used when Redis is not configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (Result, error) {
	return Result{Allowed: true}, nil
}
