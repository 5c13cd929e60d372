package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	b, ok, err := mc.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get ok=%v err=%v", ok, err)
	}
	if string(b) != "v" {
		t.Fatalf("got %q", b)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	_, ok, err := mc.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok, _ := mc.Get(ctx, "k"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()
	ctx := context.Background()

	_ = mc.Set(ctx, "a", []byte("1"), time.Minute)
	time.Sleep(2 * time.Millisecond)
	_ = mc.Set(ctx, "b", []byte("2"), time.Minute)
	time.Sleep(2 * time.Millisecond)
	// Touch "a" so "b" becomes least recently used.
	_, _, _ = mc.Get(ctx, "a")
	time.Sleep(2 * time.Millisecond)
	_ = mc.Set(ctx, "c", []byte("3"), time.Minute)

	if _, ok, _ := mc.Get(ctx, "b"); ok {
		t.Fatalf("expected b evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok, _ := mc.Get(ctx, k); !ok {
			t.Fatalf("expected %s present", k)
		}
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = mc.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Minute)
	}
	if err := mc.Delete(ctx, "k0", "k2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := mc.Get(ctx, "k0"); ok {
		t.Fatalf("expected k0 gone")
	}
	if _, ok, _ := mc.Get(ctx, "k1"); !ok {
		t.Fatalf("expected k1 present")
	}
}
