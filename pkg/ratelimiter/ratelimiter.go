package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"anoa.com/askify/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

// RateLimitError is returned when an action is still cooling down.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func (e *RateLimitError) Unwrap() error {
	return apperror.ErrRateLimitExceeded
}

// Limiter allows one action per subject per window, using redis SETNX keys
// that expire with the window. A limiter without a redis client, or with a
// non-positive window, allows everything.
type Limiter struct {
	rdb    *redis.Client
	window time.Duration
}

func New(rdb *redis.Client, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, window: window}
}

func (l *Limiter) Enabled() bool {
	return l != nil && l.rdb != nil && l.window > 0
}

func key(subject, action string) string {
	return fmt.Sprintf("rate_limit:client:%s:%s", subject, action)
}

// Allow claims the window for subject and action. When the window is
// already taken it returns a *RateLimitError carrying the remaining time.
func (l *Limiter) Allow(ctx context.Context, subject, action string) error {
	if !l.Enabled() {
		return nil
	}

	wasSet, err := l.rdb.SetNX(ctx, key(subject, action), "locked", l.window).Result()
	if err != nil {
		return fmt.Errorf("failed to check rate limit in redis: %w", err)
	}
	if wasSet {
		return nil
	}

	ttl, err := l.rdb.TTL(ctx, key(subject, action)).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return &RateLimitError{
		Message:    fmt.Sprintf("Quá nhiều yêu cầu, vui lòng thử lại sau %.0f giây", ttl.Seconds()),
		RetryAfter: ttl,
	}
}

// Clear releases the window, e.g. when the guarded action failed.
func (l *Limiter) Clear(ctx context.Context, subject, action string) error {
	if !l.Enabled() {
		return nil
	}
	return l.rdb.Del(ctx, key(subject, action)).Err()
}
