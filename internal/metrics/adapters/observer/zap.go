package observer

import (
	"time"

	"go.uber.org/zap"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/ports"
)

// ZapObserver writes aggregation progress as structured logs.
type ZapObserver struct {
	log *zap.Logger
}

var _ ports.AggregationObserver = (*ZapObserver)(nil)

func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log.Named("aggregation")}
}

func (o *ZapObserver) FetchStarted(passID, accountID string, window domain.Window) {
	o.log.Debug("Fetching account metrics",
		zap.String("pass_id", passID),
		zap.String("account_id", accountID),
		zap.Int("days", int(window)),
	)
}

func (o *ZapObserver) FetchResolved(passID, accountID string, metrics int, took time.Duration) {
	o.log.Debug("Account metrics resolved",
		zap.String("pass_id", passID),
		zap.String("account_id", accountID),
		zap.Int("metrics", metrics),
		zap.Duration("took", took),
	)
}

func (o *ZapObserver) FetchFailed(passID, accountID string, err error, took time.Duration) {
	o.log.Warn("Account metrics fetch failed",
		zap.String("pass_id", passID),
		zap.String("account_id", accountID),
		zap.Duration("took", took),
		zap.Error(err),
	)
}

func (o *ZapObserver) PassCompleted(passID string, accounts, failed int) {
	o.log.Info("Aggregation pass completed",
		zap.String("pass_id", passID),
		zap.Int("accounts", accounts),
		zap.Int("failed", failed),
	)
}
