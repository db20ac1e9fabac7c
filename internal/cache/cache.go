package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/JustJay7/court-registry/internal/database"
)

// Cache is a read-through cache of case records keyed by case id.
//
// Readers that fill the cache after a database read take Generation before
// the read and store with SetIfUnchanged, so a row read before a concurrent
// Delete or Clear is never put back.
type Cache interface {
	Get(id string) (*database.Case, bool)
	Set(value *database.Case)
	SetIfUnchanged(value *database.Case, generation uint64) bool
	Generation() uint64
	Delete(id string)
	Clear()
	Stats() CacheStats
}

type CacheStats struct {
	Hits       int64     `json:"hits"`
	Misses     int64     `json:"misses"`
	Size       int       `json:"size"`
	LastAccess time.Time `json:"last_access"`
}

type CaseCache struct {
	cache      *cache.Cache
	mu         sync.Mutex
	stats      CacheStats
	maxSize    int
	generation uint64
}

func NewCache(maxSize int, ttl time.Duration) Cache {
	return &CaseCache{
		cache:   cache.New(ttl, ttl*2),
		maxSize: maxSize,
	}
}

// Get returns a copy so callers cannot mutate the cached record.
func (c *CaseCache) Get(id string) (*database.Case, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.LastAccess = time.Now()

	if data, found := c.cache.Get(caseKey(id)); found {
		if record, ok := data.(database.Case); ok {
			c.stats.Hits++
			return &record, true
		}
	}

	c.stats.Misses++
	return nil, false
}

func (c *CaseCache) Set(value *database.Case) {
	if value == nil || value.ID == "" || c.maxSize <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(value)
}

// SetIfUnchanged stores value only if no invalidation happened since
// generation was taken.
func (c *CaseCache) SetIfUnchanged(value *database.Case, generation uint64) bool {
	if value == nil || value.ID == "" || c.maxSize <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		return false
	}
	c.store(value)
	return true
}

// Generation changes on every Delete and Clear.
func (c *CaseCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generation
}

func (c *CaseCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.cache.Delete(caseKey(id))
}

func (c *CaseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.cache.Flush()
	c.stats = CacheStats{}
}

func (c *CaseCache) store(value *database.Case) {
	if _, exists := c.cache.Get(caseKey(value.ID)); !exists && c.cache.ItemCount() >= c.maxSize {
		c.evictSoonest()
	}

	c.cache.Set(caseKey(value.ID), *value, cache.DefaultExpiration)
}

func (c *CaseCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Size = c.cache.ItemCount()
	return c.stats
}

// evictSoonest drops the entry closest to expiry, which is the oldest write.
func (c *CaseCache) evictSoonest() {
	var (
		victim string
		oldest int64
	)

	for key, item := range c.cache.Items() {
		if victim == "" || item.Expiration < oldest {
			victim = key
			oldest = item.Expiration
		}
	}

	if victim != "" {
		c.cache.Delete(victim)
	}
}

func caseKey(id string) string {
	return "case:" + id
}
