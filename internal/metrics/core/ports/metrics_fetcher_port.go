package ports

import (
	"context"

	"account-analytics-service/internal/metrics/core/domain"
)

// MetricsFetcherPort returns the native metrics of one account for a window.
// Caching, retries and rate limits are the implementation's concern.
type MetricsFetcherPort interface {
	FetchAccountMetrics(ctx context.Context, accountID string, window domain.Window) ([]domain.Metric, error)
}
