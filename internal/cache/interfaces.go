package cache

import (
	"context"
	"time"
)

// Cache stores per-platform search results for a short TTL so repeated
// keyword searches don't re-hit the marketplaces. This abstraction allows
// swapping between the memory cache (development, single instance) and Redis
// (shared deployments) without changing the search orchestrator.
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetOrSet retrieves a value or computes and stores it if missing.
	// Errors from fn are returned as-is and nothing is cached.
	GetOrSet(ctx context.Context, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, error)
}

// CacheError represents a cache-level failure.
type CacheError string

func (e CacheError) Error() string { return string(e) }

// ErrCacheMiss indicates the key was not found in cache.
const ErrCacheMiss CacheError = "cache miss"
