package cache

import (
	"context"
	"time"
)

// backfillTTL bounds the lifetime of entries copied from L2 into L1 on a
// read. The remaining L2 expiration is unknown at that point, so the L1 copy
// gets a short lease instead of the memory cache's long default; it must not
// outlive the authoritative L2 entry by much.
const backfillTTL = time.Minute

// LayeredCache implements a two-level cache (L1: memory, L2: Redis).
type LayeredCache struct {
	mem *MemoryCache
	l2  Service
}

// NewLayeredCache creates a layered cache over an existing Redis cache.
func NewLayeredCache(redisCache *RedisCache, memOpts ...MemoryOption) *LayeredCache {
	return &LayeredCache{
		mem: NewMemoryCache(memOpts...),
		l2:  redisCache,
	}
}

func (lc *LayeredCache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	// Write-through: L2 first, then memory
	if err := lc.l2.Set(ctx, key, value, expiration); err != nil {
		return err
	}
	_ = lc.mem.Set(ctx, key, value, expiration)
	return nil
}

func (lc *LayeredCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if b, ok, _ := lc.mem.Get(ctx, key); ok {
		return b, true, nil
	}

	b, ok, err := lc.l2.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	// Backfill L1 for next time, on a short lease.
	_ = lc.mem.Set(ctx, key, b, backfillTTL)
	return b, true, nil
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	_ = lc.mem.Delete(ctx, keys...)
	return lc.l2.Delete(ctx, keys...)
}

// Close closes both cache layers.
func (lc *LayeredCache) Close() error {
	_ = lc.mem.Close()
	return lc.l2.Close()
}
