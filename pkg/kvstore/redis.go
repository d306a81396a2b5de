package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisPrefix = "askify:"

// RedisStore shares client state between server instances. Changes are
// announced on a pub/sub channel per key so every instance can push them
// to its own websocket clients.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func channelFor(key string) string {
	return redisPrefix + "changes:" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, redisPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisPrefix+key, value, 0)
	pipe.Publish(ctx, channelFor(key), value)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	n, err := s.client.Del(ctx, redisPrefix+key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	if n > 0 {
		s.client.Publish(ctx, channelFor(key), "")
	}
	return nil
}

func (s *RedisStore) Subscribe(ctx context.Context, key string) (<-chan string, func(), error) {
	pubsub := s.client.Subscribe(ctx, channelFor(key))

	// Wait for confirmation that subscription is created
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", key, err)
	}

	out := make(chan string, 1)
	subCtx, stop := context.WithCancel(ctx)

	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-subCtx.Done():
					return
				}
			case <-subCtx.Done():
				return
			}
		}
	}()

	return out, stop, nil
}

// Close is a no-op: the client belongs to the caller, which also hands it
// to the rate limiter.
func (s *RedisStore) Close() error {
	return nil
}
