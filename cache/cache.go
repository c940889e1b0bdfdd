// Package cache provides the in-memory cache used to keep verification key
// material close to the verifier.
package cache

import (
	"time"

	"github.com/karlseguin/ccache/v3"
)

// Default sizing for verification key caches.
const (
	DefaultKeyCacheSize = 128
	DefaultKeyCacheTTL  = time.Hour
)

// Cache is a generic interface for a cache implementation.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T, opts ...EntryOption)
	Delete(key string)
	Clear()
	Len() int
}

// EntryOption customizes a single cache entry.
type EntryOption func(*entryConfig)

type entryConfig struct {
	ttl time.Duration
}

// WithTTL overrides the default time to live for one entry.
func WithTTL(ttl time.Duration) EntryOption {
	return func(c *entryConfig) {
		c.ttl = ttl
	}
}

type inMemory[T any] struct {
	cache      *ccache.Cache[T]
	defaultTTL time.Duration
}

// NewInMemory creates an in-memory cache with the given maximum size and
// default entry TTL.
func NewInMemory[T any](size int64, defaultTTL time.Duration) Cache[T] {
	return &inMemory[T]{
		cache:      ccache.New(ccache.Configure[T]().MaxSize(size)),
		defaultTTL: defaultTTL,
	}
}

// Get retrieves an item from the cache by its key.
func (c *inMemory[T]) Get(key string) (T, bool) {
	item := c.cache.Get(key)
	if item == nil || item.Expired() {
		var zero T
		return zero, false
	}
	return item.Value(), true
}

// Set adds an item to the cache under the given key.
func (c *inMemory[T]) Set(key string, value T, opts ...EntryOption) {
	cfg := entryConfig{ttl: c.defaultTTL}
	for _, opt := range opts {
		opt(&cfg)
	}
	c.cache.Set(key, value, cfg.ttl)
}

// Delete removes an item from the cache by its key.
func (c *inMemory[T]) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all items from the cache.
func (c *inMemory[T]) Clear() {
	c.cache.Clear()
}

// Len returns the number of items currently in the cache.
func (c *inMemory[T]) Len() int {
	return c.cache.ItemCount()
}
