package cache

import (
	"sort"
	"sync"
	"time"

	"gamepass-proxy/pkg/gamepass"
)

// DefaultTTL is the fallback freshness window when none is configured.
const DefaultTTL = 5 * time.Minute

// Cache is a process-local TTL store mapping an owner key (user id) to
// the records aggregated for it. Entries are invalidated lazily on
// read: an expired entry stays in the map until it is overwritten or
// cleared, so the map is bounded by owner cardinality rather than by a
// background sweeper.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// New creates a cache with the given TTL and the wall clock.
func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock creates a cache with an injected clock. Tests pin the
// clock to drive expiry deterministically.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns the records stored for key. ok is false when no entry
// exists, when forceRefresh is set, or when the entry's age has reached
// the TTL. Get never mutates the store.
func (c *Cache) Get(key string, forceRefresh bool) ([]gamepass.GamePass, bool) {
	if forceRefresh {
		CacheMisses.Inc()
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.expired(c.now(), c.ttl) {
		CacheMisses.Inc()
		return nil, false
	}

	CacheHits.Inc()
	return e.records, true
}

// Put stores records under key, replacing any previous entry wholesale
// and restarting its freshness window.
func (c *Cache) Put(key string, records []gamepass.GamePass) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{records: records, fetchedAt: c.now()}
	CacheEntries.Set(float64(len(c.entries)))
}

// Clear removes the entry for key. Clearing an absent key is a no-op.
func (c *Cache) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	CacheEntries.Set(float64(len(c.entries)))
}

// ClearAll removes every entry and reports how many were dropped.
func (c *Cache) ClearAll() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]entry)
	CacheEntries.Set(0)
	return n
}

// Info reports every entry, expired ones included, sorted by key.
func (c *Cache) Info() []EntryInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	infos := make([]EntryInfo, 0, len(c.entries))
	for key, e := range c.entries {
		age := e.age(now)
		infos = append(infos, EntryInfo{
			Key:              key,
			RecordCount:      len(e.records),
			AgeSeconds:       int64(age / time.Second),
			ExpiresInSeconds: int64((c.ttl - age) / time.Second),
			IsExpired:        e.expired(now, c.ttl),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// Len reports the number of entries currently held, expired included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL reports the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
