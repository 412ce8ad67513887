package ports

import (
	"context"

	"account-analytics-service/internal/ingest/core/domain"
)

type PointRepositoryPort interface {
	// UpsertPoint:
	//   written = true,  err = nil  -> new row or changed value
	//   written = false, err = nil  -> same value already stored (idempotent)
	//   written = false, err != nil -> DB error
	UpsertPoint(ctx context.Context, p *domain.MetricPoint) (written bool, err error)
}
