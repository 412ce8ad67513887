package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"account-analytics-service/internal/metrics/core/domain"
)

type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttl     time.Duration
	getErr  error
	setErr  error
	setHits int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	b, ok := c.data[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return b, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setHits++
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.ttl = ttl
	return nil
}

type countingFetcher struct {
	calls   int
	metrics []domain.Metric
	err     error
}

func (f *countingFetcher) FetchAccountMetrics(ctx context.Context, accountID string, window domain.Window) ([]domain.Metric, error) {
	f.calls++
	return f.metrics, f.err
}

func sample() []domain.Metric {
	return []domain.Metric{
		{Key: "followers", CurrentValue: 10, History: []domain.DailyMetric{{Date: "2024-01-01", Value: 10}}},
	}
}

func TestCachingFetcher_MissThenHit(t *testing.T) {
	t.Parallel()

	next := &countingFetcher{metrics: sample()}
	cache := newMemCache()
	f := NewCachingFetcher(next, cache, time.Minute, zap.NewNop())

	first, err := f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window30)
	require.NoError(t, err)
	second, err := f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window30)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, cache.ttl)
	assert.Contains(t, cache.data, "analytics:metrics:acc_1:30")
}

func TestCachingFetcher_WindowIsPartOfKey(t *testing.T) {
	t.Parallel()

	next := &countingFetcher{metrics: sample()}
	f := NewCachingFetcher(next, newMemCache(), 0, zap.NewNop())

	_, _ = f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window7)
	_, _ = f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window90)

	assert.Equal(t, 2, next.calls)
}

func TestCachingFetcher_CacheFailuresBypassed(t *testing.T) {
	t.Parallel()

	next := &countingFetcher{metrics: sample()}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	f := NewCachingFetcher(next, cache, time.Minute, zap.NewNop())

	metrics, err := f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window7)
	require.NoError(t, err)
	assert.Equal(t, sample(), metrics)
	assert.Equal(t, 1, cache.setHits)
}

func TestCachingFetcher_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	boom := errors.New("upstream")
	next := &countingFetcher{err: boom}
	cache := newMemCache()
	f := NewCachingFetcher(next, cache, time.Minute, zap.NewNop())

	_, err := f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window7)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, cache.data)
}

func TestCachingFetcher_CorruptEntryRefetched(t *testing.T) {
	t.Parallel()

	next := &countingFetcher{metrics: sample()}
	cache := newMemCache()
	cache.data["analytics:metrics:acc_1:7"] = []byte("{not json")
	f := NewCachingFetcher(next, cache, time.Minute, zap.NewNop())

	metrics, err := f.FetchAccountMetrics(context.Background(), "acc_1", domain.Window7)
	require.NoError(t, err)
	assert.Equal(t, sample(), metrics)
	assert.Equal(t, 1, next.calls)
}
