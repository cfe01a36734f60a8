// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_charts/internal/feature/chart/domain/entity"
	"stock_charts/internal/feature/chart/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// Historical time series are read-only, so a cached fetch is safe to reuse
// for every request until the TTL expires.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "timeseries".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "timeseries"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FetchTimeSeries retrieves a raw time series, checking cache first then
// falling back to the external API. Failed fetches are never cached.
func (c *CachingMarketRepository) FetchTimeSeries(ctx context.Context, symbol string, g entity.Granularity) (entity.RawResponse, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FetchTimeSeries(ctx, symbol, g)
	}

	key := c.cacheKey(symbol, g)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.RawResponse
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the external API
	out, err := c.inner.FetchTimeSeries(ctx, symbol, g)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific symbol and granularity.
func (c *CachingMarketRepository) cacheKey(symbol string, g entity.Granularity) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(symbol), g)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
