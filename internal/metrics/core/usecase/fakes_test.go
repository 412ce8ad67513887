package usecase_test

import (
	"context"
	"sync"
	"time"

	"account-analytics-service/internal/metrics/core/domain"
)

// fakeFetcher, MetricsFetcherPort'u test için fake'ler.
type fakeFetcher struct {
	FetchFn func(ctx context.Context, accountID string, window domain.Window) ([]domain.Metric, error)

	mu     sync.Mutex
	calls  []string
	window domain.Window
}

func (f *fakeFetcher) FetchAccountMetrics(ctx context.Context, accountID string, window domain.Window) ([]domain.Metric, error) {
	f.mu.Lock()
	f.calls = append(f.calls, accountID)
	f.window = window
	f.mu.Unlock()
	if f.FetchFn != nil {
		return f.FetchFn(ctx, accountID, window)
	}
	return nil, nil
}

func (f *fakeFetcher) called(accountID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == accountID {
			return true
		}
	}
	return false
}

type fakeAccountReader struct {
	ListFn  func(ctx context.Context, ids []string) ([]domain.Account, error)
	lastIDs []string
	called  bool
}

func (f *fakeAccountReader) ListAccounts(ctx context.Context, ids []string) ([]domain.Account, error) {
	f.called = true
	f.lastIDs = ids
	if f.ListFn != nil {
		return f.ListFn(ctx, ids)
	}
	return nil, nil
}

type recordingObserver struct {
	mu       sync.Mutex
	started  int
	resolved int
	failed   int
	passes   int
}

func (o *recordingObserver) FetchStarted(string, string, domain.Window) {
	o.mu.Lock()
	o.started++
	o.mu.Unlock()
}

func (o *recordingObserver) FetchResolved(string, string, int, time.Duration) {
	o.mu.Lock()
	o.resolved++
	o.mu.Unlock()
}

func (o *recordingObserver) FetchFailed(string, string, error, time.Duration) {
	o.mu.Lock()
	o.failed++
	o.mu.Unlock()
}

func (o *recordingObserver) PassCompleted(string, int, int) {
	o.mu.Lock()
	o.passes++
	o.mu.Unlock()
}

// week builds a 7-day history whose values sum to total.
func week(total float64) []domain.DailyMetric {
	out := make([]domain.DailyMetric, 7)
	per := total / 7
	for i := range out {
		out[i] = domain.DailyMetric{
			Date:  time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC).Format(time.DateOnly),
			Value: per,
		}
	}
	return out
}

func instagramAccount(followers, reach, engagement float64) []domain.Metric {
	return []domain.Metric{
		{Key: "followers", CurrentValue: followers, History: week(followers * 7)},
		{Key: "reach", CurrentValue: reach, History: week(reach)},
		{Key: "engagement_count", CurrentValue: engagement, History: week(engagement)},
	}
}

func active(ids ...string) []domain.Account {
	out := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Account{ID: id, Name: id, Platform: "instagram", Status: domain.AccountStatusActive})
	}
	return out
}
