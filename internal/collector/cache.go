package collector

import (
	"sync"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
)

// DefaultCacheTTL keeps quote lookups from hammering upstream APIs.
const DefaultCacheTTL = 30 * time.Second

type cacheEntry struct {
	stock   model.Stock
	fetched time.Time
}

// Cache is a caller-owned TTL cache for quote snapshots. It is created and
// injected explicitly; nothing in the engine holds hidden cache state.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCache creates a cache. ttl <= 0 falls back to DefaultCacheTTL; now may
// be nil, in which case time.Now is used.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     now,
	}
}

// Get returns the cached quote for symbol if it is still fresh.
func (c *Cache) Get(symbol string) (model.Stock, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[symbol]
	if !ok || c.now().Sub(e.fetched) >= c.ttl {
		return model.Stock{}, false
	}
	return e.stock, true
}

// Put stores a quote snapshot.
func (c *Cache) Put(symbol string, stock model.Stock) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[symbol] = cacheEntry{stock: stock, fetched: c.now()}
}

// CachedFetcher wraps a QuoteFetcher with a Cache.
type CachedFetcher struct {
	Fetcher QuoteFetcher
	Cache   *Cache
}

// NewCachedFetcher wraps fetcher with cache.
func NewCachedFetcher(fetcher QuoteFetcher, cache *Cache) *CachedFetcher {
	return &CachedFetcher{Fetcher: fetcher, Cache: cache}
}

func (c *CachedFetcher) Name() string { return c.Fetcher.Name() }

// FetchQuote serves from the cache when fresh, otherwise fetches and stores.
func (c *CachedFetcher) FetchQuote(symbol string) (model.Stock, error) {
	if stock, ok := c.Cache.Get(symbol); ok {
		return stock, nil
	}
	stock, err := c.Fetcher.FetchQuote(symbol)
	if err != nil {
		return model.Stock{}, err
	}
	c.Cache.Put(symbol, stock)
	return stock, nil
}

// FetchVIX delegates to the underlying fetcher; VIX readings are not cached
// per symbol since the fetcher already resolves them from a single quote.
func (c *CachedFetcher) FetchVIX() (model.VIX, error) {
	return c.Fetcher.FetchVIX()
}
