package resume2pdf

import (
	"container/list"
	"html/template"
	"sync"
	"time"
)

// Template cache bounds.
const (
	// defaultCacheSize caps the number of compiled templates held at once.
	defaultCacheSize = 8

	// defaultCacheTTL is how long a compiled template may be reused before
	// it must be recompiled, regardless of recency.
	defaultCacheTTL = 30 * time.Minute
)

// compiledTemplate is a parsed template source plus its compilation time.
// A render holds its own reference after lookup; eviction affects only
// cache residency, never a render already in flight.
type compiledTemplate struct {
	name       string
	tmpl       *template.Template
	compiledAt time.Time
}

// templateCache is an LRU cache of compiled templates with per-entry TTL.
// An entry older than the TTL is never reused even if otherwise resident;
// it is dropped on lookup and the caller recompiles.
type templateCache struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	now        func() time.Time // injectable for tests
	entries    map[string]*list.Element
	order      *list.List // front = most recently used
}

func newTemplateCache(maxEntries int, ttl time.Duration) *templateCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &templateCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}
}

// get returns the cached compiled template for name, refreshing its
// recency. Expired entries are evicted and reported as a miss.
func (c *templateCache) get(name string) (*compiledTemplate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[name]
	if !ok {
		return nil, false
	}

	ct := el.Value.(*compiledTemplate)
	if c.ttl > 0 && c.now().Sub(ct.compiledAt) >= c.ttl {
		c.order.Remove(el)
		delete(c.entries, name)
		return nil, false
	}

	c.order.MoveToFront(el)
	return ct, true
}

// put inserts or replaces a compiled template, evicting the least recently
// used entry when the cache is over capacity. Last write wins on races.
func (c *templateCache) put(ct *compiledTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[ct.name]; ok {
		el.Value = ct
		c.order.MoveToFront(el)
		return
	}

	c.entries[ct.name] = c.order.PushFront(ct)

	for c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*compiledTemplate).name)
	}
}

// len reports current residency (test helper).
func (c *templateCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
