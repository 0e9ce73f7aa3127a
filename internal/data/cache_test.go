package data

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func setupTestCache(t *testing.T) (CacheClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewCacheClient(rdb), mr
}

func TestCacheSetGet(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()

	ctx := context.Background()
	in := testRecord{ID: "123", Email: "test@example.com"}

	require.NoError(t, cache.Set(ctx, "user:123", &in, time.Minute))

	var out testRecord
	require.NoError(t, cache.Get(ctx, "user:123", &out))
	assert.Equal(t, in, out)
}

func TestCacheGet_NotFound(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()

	var out testRecord
	err := cache.Get(context.Background(), "user:missing", &out)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestCacheGet_Expired(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "user:123", &testRecord{ID: "123"}, time.Second))

	// miniredis only advances TTLs via FastForward
	mr.FastForward(2 * time.Second)

	var out testRecord
	err := cache.Get(ctx, "user:123", &out)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestCacheDelete(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "user:123", &testRecord{ID: "123"}, time.Minute))
	require.NoError(t, cache.Delete(ctx, "user:123"))

	var out testRecord
	assert.ErrorIs(t, cache.Get(ctx, "user:123", &out), ErrCacheNotFound)
}

func TestCacheNilClient(t *testing.T) {
	cache := NewCacheClient(nil)
	ctx := context.Background()

	var out testRecord
	assert.ErrorIs(t, cache.Get(ctx, "k", &out), ErrCacheUnavailable)
	assert.ErrorIs(t, cache.Set(ctx, "k", &out, time.Minute), ErrCacheUnavailable)
	assert.ErrorIs(t, cache.Delete(ctx, "k"), ErrCacheUnavailable)
}
