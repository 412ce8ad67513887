package postgres

import (
	"context"

	"account-analytics-service/internal/ingest/core/domain"
	"account-analytics-service/internal/ingest/core/ports"
)

type PointRepository struct {
	db DB
}

func NewPointRepository(db DB) *PointRepository {
	return &PointRepository{db: db}
}

var _ ports.PointRepositoryPort = (*PointRepository)(nil)

// Unchanged values are not rewritten, so 0 affected rows means an idempotent replay.
const upsertPointSQL = `
INSERT INTO account_metric_daily (
    account_id,
    metric_key,
    day,
    value
) VALUES (
    $1, $2, $3, $4
)
ON CONFLICT (account_id, metric_key, day) DO UPDATE
SET value = EXCLUDED.value, updated_at = now()
WHERE account_metric_daily.value IS DISTINCT FROM EXCLUDED.value;
`

func (r *PointRepository) UpsertPoint(ctx context.Context, p *domain.MetricPoint) (bool, error) {
	res, err := r.db.ExecContext(ctx, upsertPointSQL,
		p.AccountID,
		p.MetricKey,
		p.Day,
		p.Value,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
