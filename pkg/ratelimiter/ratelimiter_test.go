package ratelimiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/askify/pkg/apperror"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	ctx := context.Background()

	var nilLimiter *Limiter
	assert.False(t, nilLimiter.Enabled())
	assert.NoError(t, nilLimiter.Allow(ctx, "c1", "login"))

	l := New(nil, time.Minute)
	for i := 0; i < 3; i++ {
		assert.NoError(t, l.Allow(ctx, "c1", "login"))
	}
	assert.NoError(t, l.Clear(ctx, "c1", "login"))

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()
	assert.False(t, New(rdb, 0).Enabled())
}

func TestLimiter_RedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	err := New(rdb, time.Minute).Allow(context.Background(), "c1", "login")
	assert.Error(t, err)

	var rlErr *RateLimitError
	assert.False(t, errors.As(err, &rlErr))
}

func TestRateLimitError(t *testing.T) {
	err := &RateLimitError{Message: "slow down", RetryAfter: 3 * time.Second}
	assert.ErrorIs(t, err, apperror.ErrRateLimitExceeded)
	assert.Equal(t, 429, apperror.MapErrorToStatus(err))
}
