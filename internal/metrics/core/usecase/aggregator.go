package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/ports"
)

// Aggregator fetches every selected account in parallel and folds whatever
// resolved into cross-account category series.
type Aggregator struct {
	fetcher  ports.MetricsFetcherPort
	observer ports.AggregationObserver
	tracer   trace.Tracer
	limit    int
}

type Option func(*Aggregator)

func WithObserver(o ports.AggregationObserver) Option {
	return func(a *Aggregator) {
		if o != nil {
			a.observer = o
		}
	}
}

// WithConcurrency bounds the number of fetches in flight. Zero or less means unbounded.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) { a.limit = n }
}

func NewAggregator(fetcher ports.MetricsFetcherPort, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher:  fetcher,
		observer: ports.NopObserver{},
		tracer:   otel.Tracer("account-analytics-service/metrics"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate runs one complete pass. Per-account failures are reported in
// Result.Errors; the returned error is only set when ctx ends before the pass.
func (a *Aggregator) Aggregate(ctx context.Context, accounts []domain.Account, window domain.Window, keys []string) (Result, error) {
	passID := uuid.NewString()
	fetchable := fetchableAccounts(accounts)
	outcomes := make([]AccountOutcome, len(fetchable))

	var g errgroup.Group
	if a.limit > 0 {
		g.SetLimit(a.limit)
	}
	for i, acc := range fetchable {
		i, acc := i, acc
		g.Go(func() error {
			// each goroutine owns its slot
			outcomes[i] = a.fetchOne(ctx, passID, acc.ID, window)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Fold(outcomes, keys)
	res.PassID = passID
	res.Window = window
	a.observer.PassCompleted(passID, len(fetchable), len(res.Errors))
	return res, nil
}

func (a *Aggregator) fetchOne(ctx context.Context, passID, accountID string, window domain.Window) AccountOutcome {
	ctx, span := a.tracer.Start(ctx, "metrics.fetch_account", trace.WithAttributes(
		attribute.String("account.id", accountID),
		attribute.Int("window.days", int(window)),
	))
	defer span.End()

	a.observer.FetchStarted(passID, accountID, window)
	start := time.Now()

	metrics, err := a.fetcher.FetchAccountMetrics(ctx, accountID, window)
	took := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.observer.FetchFailed(passID, accountID, err, took)
		return AccountOutcome{
			AccountID: accountID,
			State:     OutcomeFailed,
			Err:       &AccountError{AccountID: accountID, Err: err},
		}
	}

	a.observer.FetchResolved(passID, accountID, len(metrics), took)
	return AccountOutcome{AccountID: accountID, State: OutcomeResolved, Metrics: metrics}
}

// fetchableAccounts keeps the first occurrence of each fetchable account.
func fetchableAccounts(accounts []domain.Account) []domain.Account {
	seen := make(map[string]struct{}, len(accounts))
	out := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if !acc.Fetchable() {
			continue
		}
		if _, dup := seen[acc.ID]; dup {
			continue
		}
		seen[acc.ID] = struct{}{}
		out = append(out, acc)
	}
	return out
}
