package cache

import (
	"context"
	"testing"
	"time"
)

// twoMemoryLayers builds a LayeredCache with a memory cache standing in for
// the Redis layer, so layering behavior is observable without a server.
func twoMemoryLayers(t *testing.T) (*LayeredCache, *MemoryCache) {
	t.Helper()
	l2 := NewMemoryCache()
	lc := &LayeredCache{mem: NewMemoryCache(), l2: l2}
	t.Cleanup(func() { _ = lc.Close() })
	return lc, l2
}

func TestLayeredWriteThrough(t *testing.T) {
	lc, l2 := twoMemoryLayers(t)
	ctx := context.Background()

	if err := lc.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	for name, c := range map[string]Service{"l1": lc.mem, "l2": l2} {
		b, ok, err := c.Get(ctx, "k")
		if err != nil || !ok || string(b) != "v" {
			t.Fatalf("%s: got %q ok=%v err=%v", name, b, ok, err)
		}
	}
}

func TestLayeredBackfillFromL2(t *testing.T) {
	lc, l2 := twoMemoryLayers(t)
	ctx := context.Background()

	// Present only in L2, as after an L1 eviction or restart.
	if err := l2.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set l2: %v", err)
	}

	b, ok, err := lc.Get(ctx, "k")
	if err != nil || !ok || string(b) != "v" {
		t.Fatalf("get: %q ok=%v err=%v", b, ok, err)
	}

	if _, ok, _ := lc.mem.Get(ctx, "k"); !ok {
		t.Fatalf("expected L1 backfill")
	}
}

func TestLayeredBackfillLeaseIsBounded(t *testing.T) {
	lc, l2 := twoMemoryLayers(t)
	ctx := context.Background()

	_ = l2.Set(ctx, "k", []byte("v"), time.Hour)
	if _, ok, _ := lc.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit via L2")
	}

	lc.mem.mu.Lock()
	item := lc.mem.data["k"]
	lc.mem.mu.Unlock()
	if item == nil {
		t.Fatalf("expected backfilled entry")
	}
	if deadline := time.Now().Add(backfillTTL + time.Second); item.expireAt.After(deadline) {
		t.Fatalf("backfilled entry expires at %v, beyond the %v lease", item.expireAt, backfillTTL)
	}
}

func TestLayeredDeleteBothLayers(t *testing.T) {
	lc, l2 := twoMemoryLayers(t)
	ctx := context.Background()

	_ = lc.Set(ctx, "k", []byte("v"), time.Minute)
	if err := lc.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := lc.mem.Get(ctx, "k"); ok {
		t.Fatalf("expected k gone from L1")
	}
	if _, ok, _ := l2.Get(ctx, "k"); ok {
		t.Fatalf("expected k gone from L2")
	}
}
