package usecase

import (
	"context"
	"errors"
	"fmt"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/ports"
)

var (
	ErrInvalidAccountSelection = errors.New("invalid account selection")
	ErrInvalidWindow           = errors.New("invalid time window")
	ErrUnknownCategory         = errors.New("unknown metric category")
)

type GetMetricsInput struct {
	AccountIDs []string
	Days       int
	Categories []string // empty = all, engagement_rate included
}

type GetMetricsUseCase struct {
	accounts   ports.AccountReaderPort
	aggregator *Aggregator
}

func NewGetMetricsUseCase(accounts ports.AccountReaderPort, aggregator *Aggregator) *GetMetricsUseCase {
	return &GetMetricsUseCase{accounts: accounts, aggregator: aggregator}
}

// Execute validates the selection, resolves the accounts and runs one
// aggregation pass over them.
func (uc *GetMetricsUseCase) Execute(ctx context.Context, in GetMetricsInput) (*Result, error) {
	ids, err := normalizeIDs(in.AccountIDs)
	if err != nil {
		return nil, err
	}

	window := domain.Window(in.Days)
	if !window.Valid() {
		return nil, ErrInvalidWindow
	}

	for _, k := range in.Categories {
		if k == domain.CategoryEngagementRate {
			continue
		}
		if _, ok := domain.LookupCategory(k); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, k)
		}
	}

	found, err := uc.accounts.ListAccounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	byID := make(map[string]domain.Account, len(found))
	for _, acc := range found {
		byID[acc.ID] = acc
	}

	selected := make([]domain.Account, 0, len(ids))
	var missing []error
	for _, id := range ids {
		acc, ok := byID[id]
		if !ok {
			missing = append(missing, &AccountError{AccountID: id, Err: ErrAccountNotFound})
			continue
		}
		selected = append(selected, acc)
	}

	res, err := uc.aggregator.Aggregate(ctx, selected, window, in.Categories)
	if err != nil {
		return nil, err
	}
	res.Errors = append(res.Errors, missing...)

	return &res, nil
}

func normalizeIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidAccountSelection
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, ErrInvalidAccountSelection
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
