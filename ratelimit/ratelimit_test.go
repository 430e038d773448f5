package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/config/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestMemoryLimiterWindow(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	limiter := NewMemoryLimiter(MemoryLimiterConfig{Now: clock.Now})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := limiter.Allow(ctx, "client", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 2-i, d.Remaining)
		assert.Equal(t, clock.now.Add(time.Minute), d.ResetAt)
	}
	d, err := limiter.Allow(ctx, "client", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	// other keys have their own budget
	d, err = limiter.Allow(ctx, "other", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	clock.now = clock.now.Add(time.Minute + time.Second)
	d, err = limiter.Allow(ctx, "client", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Remaining)
}

func TestMemoryLimiterCapacity(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	limiter := NewMemoryLimiter(MemoryLimiterConfig{Now: clock.Now, MaxKeys: 2})
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "a", 1, time.Second)
	require.NoError(t, err)
	_, err = limiter.Allow(ctx, "b", 1, time.Second)
	require.NoError(t, err)
	_, err = limiter.Allow(ctx, "c", 1, time.Second)
	require.Error(t, err)

	// expired buckets are collected to make room
	clock.now = clock.now.Add(2 * time.Second)
	d, err := limiter.Allow(ctx, "c", 1, time.Second)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimitDisabled(t *testing.T) {
	d, err := NewMemoryLimiter(MemoryLimiterConfig{}).Allow(context.Background(), "k", 0, time.Second)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestDecisionFromScript(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tcs := []struct {
		name      string
		result    interface{}
		allowed   bool
		remaining int
		resetAt   time.Time
		err       bool
	}{
		{name: "first request", result: []interface{}{int64(1), int64(60000)}, allowed: true, remaining: 4, resetAt: now.Add(time.Minute)},
		{name: "last allowed", result: []interface{}{int64(5), int64(1500)}, allowed: true, remaining: 0, resetAt: now.Add(1500 * time.Millisecond)},
		{name: "over limit", result: []interface{}{int64(9), int64(10)}, allowed: false, remaining: 0, resetAt: now.Add(10 * time.Millisecond)},
		{name: "no ttl", result: []interface{}{int64(1), int64(-1)}, allowed: true, remaining: 4, resetAt: now},
		{name: "short reply", result: []interface{}{int64(1)}, err: true},
		{name: "bad counter", result: []interface{}{"1", int64(1)}, err: true},
		{name: "not a list", result: "OK", err: true},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d, err := decisionFromScript(tc.result, 5, now)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, d.Allowed)
			assert.Equal(t, tc.remaining, d.Remaining)
			assert.Equal(t, tc.resetAt, d.ResetAt)
			assert.Equal(t, 5, d.Limit)
		})
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	limiter, err := New(ctx, Config{})
	require.NoError(t, err)
	assert.Nil(t, limiter)

	limiter, err = New(ctx, Config{Enabled: true, Backend: BackendMemory, Requests: 1, Window: types.Duration{Duration: time.Second}})
	require.NoError(t, err)
	assert.NotNil(t, limiter)

	_, err = New(ctx, Config{Enabled: true, Backend: "etcd"})
	require.Error(t, err)

	_, err = New(ctx, Config{Enabled: true, Backend: BackendRedis})
	require.Error(t, err)
}
