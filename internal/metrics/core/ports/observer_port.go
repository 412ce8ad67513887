package ports

import (
	"time"

	"account-analytics-service/internal/metrics/core/domain"
)

// AggregationObserver receives progress notifications from an aggregation pass.
// Implementations must be safe for concurrent use.
type AggregationObserver interface {
	FetchStarted(passID, accountID string, window domain.Window)
	FetchResolved(passID, accountID string, metrics int, took time.Duration)
	FetchFailed(passID, accountID string, err error, took time.Duration)
	PassCompleted(passID string, accounts, failed int)
}

type NopObserver struct{}

func (NopObserver) FetchStarted(string, string, domain.Window) {}
func (NopObserver) FetchResolved(string, string, int, time.Duration) {}
func (NopObserver) FetchFailed(string, string, error, time.Duration) {}
func (NopObserver) PassCompleted(string, int, int) {}
