package ratelimit

import (
	"context"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultWindowMillis = 1000

type redisLimiter struct {
	client    redis.UniversalClient
	keyPrefix string
	now       func() time.Time
}

var redisAllowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// NewRedisLimiter creates a limiter sharing its counters through redis.
func NewRedisLimiter(ctx context.Context, cfg RedisConfig, now func() time.Time) (Limiter, error) {
	if len(cfg.Addrs) == 0 {
		return nil, errors.New("redis address is empty")
	}
	if now == nil {
		now = time.Now
	}
	var client redis.UniversalClient
	if cfg.IsClusterMode {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addrs[0],
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}
	res, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to redis server")
	}
	log.Debugf("redis health check done, result: %v", res)
	return &redisLimiter{client: client, keyPrefix: cfg.KeyPrefix, now: now}, nil
}

func (r *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	windowMillis := window.Milliseconds()
	if windowMillis <= 0 {
		windowMillis = defaultWindowMillis
	}
	result, err := redisAllowScript.Run(ctx, r.client, []string{r.keyPrefix + key}, windowMillis).Result()
	if err != nil {
		return Decision{}, errors.Wrap(err, "rate limit script error")
	}
	return decisionFromScript(result, limit, r.now())
}

// decisionFromScript converts the {counter, pttl} reply of the allow script.
func decisionFromScript(result interface{}, limit int, now time.Time) (Decision, error) {
	values, ok := result.([]interface{})
	if !ok || len(values) < 2 { //nolint:gomnd
		return Decision{}, errors.New("unexpected redis rate limit response")
	}
	current, ok := values[0].(int64)
	if !ok {
		return Decision{}, errors.New("invalid redis counter response")
	}
	ttlMillis, _ := values[1].(int64)
	resetAt := now
	if ttlMillis > 0 {
		resetAt = resetAt.Add(time.Duration(ttlMillis) * time.Millisecond)
	}
	remaining := limit - int(current)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   current <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
