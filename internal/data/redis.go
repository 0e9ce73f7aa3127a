package data

import (
	"context"
	"time"

	"CredLane/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a new Redis client with connection pool configuration.
// Connection failure does not prevent application startup: the service runs
// without a user cache when Redis is missing.
func NewRedisClient(c *conf.Data, logger log.Logger) (*redis.Client, func(), error) {
	helper := log.NewHelper(logger)

	if c == nil || c.Redis == nil || c.Redis.Addr == "" {
		helper.Warn("redis address is empty, skipping redis initialization")
		return nil, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:            c.Redis.Addr,
		PoolSize:        100,
		MinIdleConns:    10,
		DialTimeout:     3 * time.Second,
		ReadTimeout:     c.Redis.ReadTimeout.AsDuration(),
		WriteTimeout:    c.Redis.WriteTimeout.AsDuration(),
		ConnMaxIdleTime: 5 * time.Minute,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		helper.Warnf("failed to connect to redis at %s: %v (continuing without cache)", c.Redis.Addr, err)
	} else {
		helper.Infof("connected to redis at %s", c.Redis.Addr)
	}

	cleanup := func() {
		helper.Info("closing redis client")
		if err := rdb.Close(); err != nil {
			helper.Errorf("failed to close redis client: %v", err)
		}
	}

	return rdb, cleanup, nil
}
