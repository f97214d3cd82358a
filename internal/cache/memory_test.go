package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	if _, err := c.Get(ctx, "missing"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected cache miss, got %v", err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("got %q, want %q", got, "v")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected expired entry to miss, got %v", err)
	}
}

func TestMemoryCacheGetOrSet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	calls := 0
	fill := func() ([]byte, error) {
		calls++
		return []byte("computed"), nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrSet(ctx, "k", time.Minute, fill)
		if err != nil {
			t.Fatalf("GetOrSet: %v", err)
		}
		if string(got) != "computed" {
			t.Errorf("got %q, want %q", got, "computed")
		}
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestMemoryCacheGetOrSetError(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	boom := errors.New("upstream down")
	if _, err := c.GetOrSet(ctx, "k", time.Minute, func() ([]byte, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fill error, got %v", err)
	}

	// the failure must not be cached
	got, err := c.GetOrSet(ctx, "k", time.Minute, func() ([]byte, error) {
		return []byte("ok"), nil
	})
	if err != nil {
		t.Fatalf("GetOrSet after failure: %v", err)
	}
	if string(got) != "ok" {
		t.Errorf("got %q, want %q", got, "ok")
	}
}

func TestMemoryCacheIsolatesStoredBytes(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	buf := []byte("original")
	if err := c.Set(ctx, "k", buf, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	buf[0] = 'X'

	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("stored value aliased caller buffer: %q", got)
	}
}
