package main

import (
	"CredLane/internal/biz"
	"CredLane/internal/data"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/robfig/cron/v3"
)

// startCacheStatsCron periodically logs token validation cache hit rates so
// cache sizing can be judged from the logs alone. Returns nil when the token
// service carries no cache.
func startCacheStatsCron(tokens biz.TokenService, logger log.Logger) *cron.Cron {
	helper := log.NewHelper(logger)

	cached, ok := tokens.(*data.CachedTokenService)
	if !ok {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc("@every 1m", func() {
		stats := cached.Stats()
		total := stats.Hits + stats.Misses
		var hitRate float64
		if total > 0 {
			hitRate = float64(stats.Hits) / float64(total)
		}
		helper.Infow(
			"msg", "token cache stats",
			"hits", stats.Hits,
			"misses", stats.Misses,
			"entries", stats.Size,
			"hit_rate", hitRate,
		)
	})
	if err != nil {
		helper.Errorw("msg", "failed to register cache stats cron job", "error", err)
		return nil
	}

	c.Start()
	helper.Info("token cache stats cron started, reporting every minute")

	return c
}
