package ports

import (
	"context"

	"account-analytics-service/internal/metrics/core/domain"
)

type AccountReaderPort interface {
	// ListAccounts returns the known accounts among ids. Unknown ids are
	// omitted, not reported as an error.
	ListAccounts(ctx context.Context, ids []string) ([]domain.Account, error)
}
