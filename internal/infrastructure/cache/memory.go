package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cleanfood/backend/internal/domain"
)

// cleanupInterval controls how often expired entries are swept
const cleanupInterval = 10 * time.Minute

// cacheItem represents a single cached analysis with expiration
type cacheItem struct {
	result     *domain.AnalysisResult
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory analysis cache with TTL support
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache and starts its sweep loop
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	go cache.cleanupExpired()

	return cache
}

// Get retrieves a cached analysis result
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.AnalysisResult, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	return item.result, nil
}

// Set stores an analysis result with TTL. The result is treated as
// immutable by both sides, so it is stored without copying.
func (c *MemoryCache) Set(ctx context.Context, key string, result *domain.AnalysisResult, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		result:     result,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a cached result
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return false, nil
	}

	if time.Now().After(item.expiration) {
		return false, nil
	}

	return true, nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
