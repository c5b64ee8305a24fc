package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/CHEATEY13/Last/core"
)

// Config configures cache behavior.
type Config struct {
	TTL     time.Duration
	MaxSize int
}

// Stats are simple counters for cache behavior, intended for
// diagnostics and monitoring.
type Stats struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Sets      int64         `json:"sets"`
	Deletes   int64         `json:"deletes"`
	Evictions int64         `json:"evictions"`
	Size      int           `json:"size"`
	TTL       time.Duration `json:"ttl"`
}

// InMemoryCache caches verified bearer-token identities keyed by token
// hash. Entries expire after the configured TTL so a deleted user does
// not stay authenticated forever through the cache.
type InMemoryCache struct {
	cache   map[string]*cachedRecord // key: token hash
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int

	// counters
	hits      int64
	misses    int64
	sets      int64
	deletes   int64
	evictions int64
}

type cachedRecord struct {
	identity *core.Identity
	cachedAt time.Time
}

var _ core.IdentityCache = (*InMemoryCache)(nil)

func New(c Config) *InMemoryCache {
	if c.TTL == 0 {
		c.TTL = 5 * time.Minute
	}
	if c.MaxSize == 0 {
		c.MaxSize = 500
	}

	return &InMemoryCache{
		cache:   make(map[string]*cachedRecord),
		ttl:     c.TTL,
		maxSize: c.MaxSize,
	}
}

func (c *InMemoryCache) Get(tokenHash string) (*core.Identity, error) {
	c.mu.RLock()
	record, exists := c.cache[tokenHash]
	c.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&c.misses, 1)
		return nil, core.ErrCacheNotFound
	}

	if time.Since(record.cachedAt) > c.ttl {
		atomic.AddInt64(&c.misses, 1)
		_ = c.Delete(tokenHash)
		return nil, core.ErrCacheNotFound
	}

	atomic.AddInt64(&c.hits, 1)
	return record.identity, nil
}

func (c *InMemoryCache) Set(tokenHash string, id *core.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Simple eviction if full
	if len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			atomic.AddInt64(&c.evictions, 1)
			break
		}
	}

	c.cache[tokenHash] = &cachedRecord{
		identity: id,
		cachedAt: time.Now(),
	}

	atomic.AddInt64(&c.sets, 1)
	return nil
}

func (c *InMemoryCache) Delete(tokenHash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, existed := c.cache[tokenHash]; existed {
		delete(c.cache, tokenHash)
		atomic.AddInt64(&c.deletes, 1)
	}
	return nil
}

func (c *InMemoryCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*cachedRecord)
	return nil
}

func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func (c *InMemoryCache) Stats() Stats {
	return Stats{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Sets:      atomic.LoadInt64(&c.sets),
		Deletes:   atomic.LoadInt64(&c.deletes),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      c.Len(),
		TTL:       c.ttl,
	}
}
