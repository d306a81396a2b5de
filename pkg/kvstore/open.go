package kvstore

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Open builds the store selected by driver. redisClient is only used by
// the redis driver and must be non-nil for it.
func Open(driver, sqlitePath string, redisClient *redis.Client) (Store, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		return NewSQLiteStore(sqlitePath)
	case DriverRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis store requires REDIS_URL")
		}
		return NewRedisStore(redisClient), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
