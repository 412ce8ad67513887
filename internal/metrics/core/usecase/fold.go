package usecase

import (
	"errors"
	"fmt"

	"account-analytics-service/internal/metrics/core/domain"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountError is a failure confined to a single account. It never aborts the
// aggregation of the remaining accounts.
type AccountError struct {
	AccountID string
	Err       error
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("account %s: %v", e.AccountID, e.Err)
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

type OutcomeState int

const (
	OutcomePending OutcomeState = iota
	OutcomeResolved
	OutcomeFailed
)

// AccountOutcome is the fetch state of one account within a pass.
type AccountOutcome struct {
	AccountID string
	State     OutcomeState
	Metrics   []domain.Metric
	Err       error
}

type CategoryResult struct {
	Metric    domain.AnalyticsMetric
	IsLoading bool
}

type Result struct {
	PassID     string
	Window     domain.Window
	Categories []CategoryResult
	IsLoading  bool
	Errors     []error
}

// Category returns the result for a category key, including engagement_rate.
func (r Result) Category(key string) (CategoryResult, bool) {
	for _, c := range r.Categories {
		if c.Metric.Key == key {
			return c, true
		}
	}
	return CategoryResult{}, false
}

// Fold aggregates the resolved outcomes into one result per category. keys
// selects the categories to emit; empty means all, engagement rate included.
// Outcome order has no effect on totals or histories.
func Fold(outcomes []AccountOutcome, keys []string) Result {
	cats := domain.Categories()
	accs := make(map[string]*domain.Accumulator, len(cats))
	for _, c := range cats {
		accs[c.Key] = domain.NewAccumulator()
	}

	var res Result
	for _, o := range outcomes {
		switch o.State {
		case OutcomePending:
			res.IsLoading = true
		case OutcomeFailed:
			res.Errors = append(res.Errors, o.Err)
		case OutcomeResolved:
			for _, c := range cats {
				if m, ok := c.Resolve(o.Metrics); ok {
					accs[c.Key].Add(m)
				}
			}
		}
	}

	want := selection(keys)
	for _, c := range cats {
		if !want(c.Key) {
			continue
		}
		res.Categories = append(res.Categories, CategoryResult{
			Metric:    accs[c.Key].Metric(c),
			IsLoading: res.IsLoading,
		})
	}

	if want(domain.CategoryEngagementRate) {
		eng, exp := accs[domain.CategoryEngagement], accs[domain.CategoryExposure]
		rc := domain.EngagementRateCategory()
		res.Categories = append(res.Categories, CategoryResult{
			Metric: domain.AnalyticsMetric{
				Key:          rc.Key,
				Label:        rc.Label,
				CurrentValue: domain.DeriveRate(eng.Total, exp.Total),
				History:      domain.DeriveRateHistory(eng.Dates, exp.Dates),
			},
			IsLoading: res.IsLoading,
		})
	}

	return res
}

func selection(keys []string) func(string) bool {
	if len(keys) == 0 {
		return func(string) bool { return true }
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(k string) bool {
		_, ok := set[k]
		return ok
	}
}
