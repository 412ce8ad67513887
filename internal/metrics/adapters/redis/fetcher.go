package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/ports"
)

const keyPrefix = "analytics:metrics"

// CachingFetcher serves account metrics from the cache and falls through to
// the wrapped fetcher on a miss. Cache trouble never fails a fetch.
type CachingFetcher struct {
	next  ports.MetricsFetcherPort
	cache Cache
	ttl   time.Duration
	log   *zap.Logger
}

var _ ports.MetricsFetcherPort = (*CachingFetcher)(nil)

func NewCachingFetcher(next ports.MetricsFetcherPort, cache Cache, ttl time.Duration, log *zap.Logger) *CachingFetcher {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingFetcher{next: next, cache: cache, ttl: ttl, log: log}
}

func cacheKey(accountID string, window domain.Window) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, accountID, window)
}

func (f *CachingFetcher) FetchAccountMetrics(ctx context.Context, accountID string, window domain.Window) ([]domain.Metric, error) {
	key := cacheKey(accountID, window)

	b, err := f.cache.Get(ctx, key)
	switch {
	case err == nil:
		var metrics []domain.Metric
		if jerr := json.Unmarshal(b, &metrics); jerr == nil {
			return metrics, nil
		}
		f.log.Warn("Discarding undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, ErrCacheMiss):
		f.log.Warn("Metrics cache read failed", zap.String("key", key), zap.Error(err))
	}

	metrics, err := f.next.FetchAccountMetrics(ctx, accountID, window)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(metrics); err == nil {
		if err := f.cache.Set(ctx, key, b, f.ttl); err != nil {
			f.log.Warn("Metrics cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return metrics, nil
}
