package loaders

import (
	"github.com/persona-chain/go-zkverifier/cache"
	"github.com/persona-chain/go-zkverifier/circuits"
)

// CachedKeyLoader wraps another loader with an expiring in-memory cache.
// EmbeddedKeyLoader memoizes on its own; this wrapper is for filesystem or
// remote loaders where repeated reads are costly.
type CachedKeyLoader struct {
	loader VerificationKeyLoader
	keys   cache.Cache[[]byte]
}

// NewCachedKeyLoader wraps loader with the default key cache sizing.
func NewCachedKeyLoader(loader VerificationKeyLoader) *CachedKeyLoader {
	return NewCachedKeyLoaderWithCache(loader,
		cache.NewInMemory[[]byte](cache.DefaultKeyCacheSize, cache.DefaultKeyCacheTTL))
}

// NewCachedKeyLoaderWithCache wraps loader with a caller supplied cache.
func NewCachedKeyLoaderWithCache(loader VerificationKeyLoader, keys cache.Cache[[]byte]) *CachedKeyLoader {
	return &CachedKeyLoader{loader: loader, keys: keys}
}

// Load returns cached key bytes when present, falling back to the wrapped
// loader and caching its result.
func (c *CachedKeyLoader) Load(id circuits.CircuitID) ([]byte, error) {
	if key, ok := c.keys.Get(string(id)); ok {
		return key, nil
	}
	key, err := c.loader.Load(id)
	if err != nil {
		return nil, err
	}
	c.keys.Set(string(id), key)
	return key, nil
}
