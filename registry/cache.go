package registry

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pomexplorer/pomresolve"
	"github.com/pomexplorer/pomresolve/coordinate"
)

// DefaultCacheSize bounds how many resolved projects a Cache holds before it
// starts evicting least-recently-used entries.
const DefaultCacheSize = 2048

// DefaultCacheTTL bounds how long a cached project is trusted before a
// lookup is forced to go back to its source. A remote repository's content
// is immutable per GAV in practice, but a generous TTL still protects a
// long-lived process against ever serving a permanently stale entry.
const DefaultCacheTTL = 30 * time.Minute

// entry is what the cache actually stores. found distinguishes a cached
// negative lookup (project is nil) from an absent cache entry.
type entry struct {
	project *pomresolve.Project
	found   bool
}

// Cache is a bounded, TTL-expiring cache of resolved projects keyed by GAV,
// sitting in front of a slower Source such as RemoteRepository. It records
// hit/miss counts through a MetricsRecorder so callers can watch cache
// effectiveness in production.
type Cache struct {
	entries  *expirable.LRU[coordinate.Gav, entry]
	metrics  MetricsRecorder
	negative bool
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithNegativeCaching makes the cache remember "not found" results too, so
// a repeatedly-queried missing GAV does not repeatedly hit the underlying
// Source.
func WithNegativeCaching() CacheOption {
	return func(c *Cache) { c.negative = true }
}

// WithMetricsRecorder attaches a MetricsRecorder; without one, metrics calls
// are no-ops.
func WithMetricsRecorder(m MetricsRecorder) CacheOption {
	return func(c *Cache) { c.metrics = m }
}

// NewCache builds a Cache with the given capacity and TTL. A non-positive
// size or ttl falls back to the package defaults.
func NewCache(size int, ttl time.Duration, opts ...CacheOption) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	c := &Cache{
		entries: expirable.NewLRU[coordinate.Gav, entry](size, nil, ttl),
		metrics: NoopMetricsRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a cached project for gav and whether the lookup it represents
// found one, reporting separately whether the cache held any entry at all.
func (c *Cache) Get(gav coordinate.Gav) (project *pomresolve.Project, found, cached bool) {
	v, ok := c.entries.Get(gav)
	if !ok {
		c.metrics.CacheMiss(gav.String())
		return nil, false, false
	}
	c.metrics.CacheHit(gav.String())
	return v.project, v.found, true
}

// Put records a positive lookup result.
func (c *Cache) Put(gav coordinate.Gav, p *pomresolve.Project) {
	c.entries.Add(gav, entry{project: p, found: true})
}

// PutMiss records a negative lookup result, if negative caching is enabled;
// otherwise it is a no-op.
func (c *Cache) PutMiss(gav coordinate.Gav) {
	if !c.negative {
		return
	}
	c.entries.Add(gav, entry{found: false})
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge evicts every entry.
func (c *Cache) Purge() {
	c.entries.Purge()
}
