package ratings

import (
	"fmt"
	"sync"
)

const cacheKeyPrefix = "jornal_rating_"

// Cache is the device-local tier of the rating store. An entry means "the
// last value this device submitted", nothing more: its existence does not
// imply the remote write succeeded.
type Cache interface {
	Get(deviceID, postID string) (int, bool)
	Set(deviceID, postID string, value int)
}

func cacheKey(deviceID, postID string) string {
	return fmt.Sprintf("%s:%s%s", deviceID, cacheKeyPrefix, postID)
}

// MemoryCache keeps per-device entries in a mutex-guarded map. It stands in
// for the browser's key-value storage, scoped by the device ID cookie.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]int)}
}

func (c *MemoryCache) Get(deviceID, postID string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[cacheKey(deviceID, postID)]
	return v, ok
}

func (c *MemoryCache) Set(deviceID, postID string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(deviceID, postID)] = value
}
