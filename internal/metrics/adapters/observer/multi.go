package observer

import (
	"time"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/ports"
)

// Multi fans every notification out to all observers in order.
type Multi []ports.AggregationObserver

func (m Multi) FetchStarted(passID, accountID string, window domain.Window) {
	for _, o := range m {
		o.FetchStarted(passID, accountID, window)
	}
}

func (m Multi) FetchResolved(passID, accountID string, metrics int, took time.Duration) {
	for _, o := range m {
		o.FetchResolved(passID, accountID, metrics, took)
	}
}

func (m Multi) FetchFailed(passID, accountID string, err error, took time.Duration) {
	for _, o := range m {
		o.FetchFailed(passID, accountID, err, took)
	}
}

func (m Multi) PassCompleted(passID string, accounts, failed int) {
	for _, o := range m {
		o.PassCompleted(passID, accounts, failed)
	}
}
