package data

import (
	"sync/atomic"
	"time"

	"CredLane/internal/biz"
	"CredLane/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultTokenCacheTTL      = 30 * time.Second
	defaultTokenCacheCapacity = 10000
)

// CachedTokenService decorates a token service with an in-process TTL cache
// for validation results. CreateToken passes through untouched. Failed
// validations are never cached, so a token rejected once is re-verified on
// the next call.
type CachedTokenService struct {
	inner  biz.TokenService
	cache  *expirable.LRU[string, biz.TokenClaims]
	hits   atomic.Uint64
	misses atomic.Uint64
	logger *log.Helper
}

// TokenCacheStats is a point-in-time snapshot of cache effectiveness.
type TokenCacheStats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// NewCachedTokenService wraps the JWT token service with a validation cache
// sized and aged per conf.Auth.TokenCache.
func NewCachedTokenService(c *conf.Auth, inner *JWTTokenService, logger log.Logger) biz.TokenService {
	ttl := defaultTokenCacheTTL
	capacity := defaultTokenCacheCapacity
	if c != nil && c.TokenCache != nil {
		if c.TokenCache.Ttl != nil {
			ttl = c.TokenCache.Ttl.AsDuration()
		}
		if c.TokenCache.MaxCapacity > 0 {
			capacity = int(c.TokenCache.MaxCapacity)
		}
	}

	return &CachedTokenService{
		inner:  inner,
		cache:  newExpirableLRU(capacity, ttl),
		logger: log.NewHelper(logger),
	}
}

func newExpirableLRU(capacity int, ttl time.Duration) *expirable.LRU[string, biz.TokenClaims] {
	return expirable.NewLRU[string, biz.TokenClaims](capacity, nil, ttl)
}

// CreateToken delegates to the underlying service.
func (s *CachedTokenService) CreateToken(user *biz.User) (string, error) {
	return s.inner.CreateToken(user)
}

// ValidateToken returns the cached claims when present, otherwise verifies
// the token and caches the successful result.
func (s *CachedTokenService) ValidateToken(token string) (*biz.TokenClaims, error) {
	if claims, ok := s.cache.Get(token); ok && time.Now().Before(claims.ExpiresAt) {
		s.hits.Add(1)
		return &claims, nil
	}

	s.misses.Add(1)
	claims, err := s.inner.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	s.cache.Add(token, *claims)
	return claims, nil
}

// Stats reports hit and miss counts since startup and the current entry count.
func (s *CachedTokenService) Stats() TokenCacheStats {
	return TokenCacheStats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Size:   s.cache.Len(),
	}
}
