package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CraftingDB_Go/internal/domain"
	"github.com/osse101/CraftingDB_Go/internal/metrics"
)

type cachedProfit struct {
	profit int
	ok     bool
}

// profitCache memoizes CalcProfit by Recipe.Key. Any mutation can change a
// profit (sell values, removed items), so callers purge after every
// applied mutation instead of tracking dependencies.
type profitCache struct {
	lru *expirable.LRU[string, cachedProfit]
}

func newProfitCache(size int, ttl time.Duration) *profitCache {
	return &profitCache{
		lru: expirable.NewLRU[string, cachedProfit](size, nil, ttl),
	}
}

// get returns the cached profit or computes and stores it
func (c *profitCache) get(recipe *domain.Recipe, compute func(*domain.Recipe) (int, bool)) (int, bool) {
	key := recipe.Key()
	if entry, found := c.lru.Get(key); found {
		metrics.ProfitCacheHits.Inc()
		return entry.profit, entry.ok
	}
	metrics.ProfitCacheMisses.Inc()

	profit, ok := compute(recipe)
	c.lru.Add(key, cachedProfit{profit: profit, ok: ok})
	return profit, ok
}

func (c *profitCache) purge() {
	c.lru.Purge()
}

func (c *profitCache) len() int {
	return c.lru.Len()
}
