// Package data provides data access layer implementations.
// It handles database connections, caching and data persistence.
package data

import (
	"CredLane/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewRedisClient,
	NewCacheClient,
	NewMySQLClient,
	NewUserRepo,
	NewPasswordHasher,
	NewTokenService,
	NewCachedTokenService,
)

// Data contains shared data layer dependencies.
type Data struct {
	redisClient *redis.Client
	cache       CacheClient
}

// NewData creates a new Data instance.
// Redis being unavailable does not prevent application startup.
func NewData(_ *conf.Data, logger log.Logger, rdb *redis.Client, cache CacheClient) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	if rdb == nil {
		helper.Warn("redis client is nil, user caching will be unavailable")
	}

	d := &Data{
		redisClient: rdb,
		cache:       cache,
	}

	cleanup := func() {
		helper.Info("closing the data resources")
	}

	return d, cleanup, nil
}

// GetCache returns the cache client for repository use.
func (d *Data) GetCache() CacheClient {
	return d.cache
}
