package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
)

// Decision is the outcome of one Allow call
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts requests per key in fixed windows
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
}

// New creates the limiter selected by cfg.Backend. It returns nil when rate limiting is disabled.
func New(ctx context.Context, cfg Config) (Limiter, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	switch cfg.Backend {
	case "", BackendMemory:
		log.Infof("rate limiter: memory backend, %d requests per %s", cfg.Requests, cfg.Window.Duration)
		return NewMemoryLimiter(MemoryLimiterConfig{MaxKeys: cfg.MaxKeys}), nil
	case BackendRedis:
		log.Infof("rate limiter: redis backend %v, %d requests per %s", cfg.Redis.Addrs, cfg.Requests, cfg.Window.Duration)
		return NewRedisLimiter(ctx, cfg.Redis, nil)
	default:
		return nil, fmt.Errorf("unknown rate limiter backend %q", cfg.Backend)
	}
}
