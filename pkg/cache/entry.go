package cache

import (
	"time"

	"gamepass-proxy/pkg/gamepass"
)

// entry is one cached aggregation result. Entries are replaced
// wholesale on Put; there is no partial merge.
type entry struct {
	records   []gamepass.GamePass
	fetchedAt time.Time
}

// age returns how long ago the entry was fetched.
func (e entry) age(now time.Time) time.Duration {
	return now.Sub(e.fetchedAt)
}

// expired reports whether the entry's age has reached ttl.
func (e entry) expired(now time.Time, ttl time.Duration) bool {
	return e.age(now) >= ttl
}

// EntryInfo describes one cache entry for the introspection endpoint.
// ExpiresInSeconds goes negative once an entry has outlived the TTL but
// has not yet been overwritten or cleared.
type EntryInfo struct {
	Key              string `json:"key"`
	RecordCount      int    `json:"recordCount"`
	AgeSeconds       int64  `json:"ageSeconds"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
	IsExpired        bool   `json:"isExpired"`
}
