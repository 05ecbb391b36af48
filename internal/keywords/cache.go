package keywords

import (
	"crypto/sha256"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/jonathan/job-matcher/internal/types"
)

// DefaultCacheEntries bounds the memoized descriptions held by a Cache
const DefaultCacheEntries = 4096

// Cache memoizes extraction per description. Extraction is a pure function of
// the text, so entries never go stale.
type Cache struct {
	extractor  *Extractor
	maxEntries int

	mu      sync.RWMutex
	entries map[[sha256.Size]byte]types.KeywordSet

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache wraps extractor. maxEntries <= 0 selects DefaultCacheEntries.
func NewCache(extractor *Extractor, maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}
	return &Cache{
		extractor:  extractor,
		maxEntries: maxEntries,
		entries:    make(map[[sha256.Size]byte]types.KeywordSet),
	}
}

// Extract returns the cached KeywordSet for description, extracting on a miss.
// The returned slice is a copy and may be modified by the caller.
func (c *Cache) Extract(description string) types.KeywordSet {
	key := sha256.Sum256([]byte(description))

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return slices.Clone(cached)
	}

	c.misses.Add(1)
	extracted := c.extractor.Extract(description)

	c.mu.Lock()
	if len(c.entries) >= c.maxEntries {
		// evict one arbitrary entry
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = extracted
	c.mu.Unlock()

	return slices.Clone(extracted)
}

// Len returns the number of cached descriptions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
