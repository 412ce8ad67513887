package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DB is the read side both repositories need. Tests swap in a fake scanner.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// queryDB adapts *sql.DB; *sql.Rows already satisfies RowScanner.
type queryDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &queryDB{db: db}
}

func (q *queryDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AccountRepository reads connected social accounts.
type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

var _ ports.AccountReaderPort = (*AccountRepository)(nil)

const listAccountsSQL = `
SELECT id, name, platform, status
FROM social_accounts
WHERE id = ANY($1)
ORDER BY id`

func (r *AccountRepository) ListAccounts(ctx context.Context, ids []string) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, listAccountsSQL, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		var a domain.Account
		var status string
		if err := rows.Scan(&a.ID, &a.Name, &a.Platform, &status); err != nil {
			return nil, err
		}
		a.Status = domain.AccountStatus(status)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// MetricsRepository serves per-account daily metrics stored by the ingest
// endpoints. It is a drop-in fetcher when the backend API is not used.
type MetricsRepository struct {
	db  DB
	now func() time.Time
}

func NewMetricsRepository(db DB) *MetricsRepository {
	return &MetricsRepository{db: db, now: time.Now}
}

var _ ports.MetricsFetcherPort = (*MetricsRepository)(nil)

const accountMetricsSQL = `
SELECT
    metric_key,
    day,
    value
FROM account_metric_daily
WHERE account_id = $1 AND day > $2 AND day <= $3
ORDER BY metric_key, day`

func (r *MetricsRepository) FetchAccountMetrics(ctx context.Context, accountID string, window domain.Window) ([]domain.Metric, error) {
	to := r.now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -int(window))

	rows, err := r.db.QueryContext(ctx, accountMetricsSQL, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query account metrics: %w", err)
	}
	defer rows.Close()

	var out []domain.Metric
	for rows.Next() {
		var key string
		var day time.Time
		var value float64
		if err := rows.Scan(&key, &day, &value); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Key != key {
			out = append(out, domain.Metric{Key: key})
		}
		m := &out[len(out)-1]
		m.History = append(m.History, domain.DailyMetric{
			Date:  day.UTC().Format(time.DateOnly),
			Value: value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].CurrentValue = currentValue(out[i])
	}
	return out, nil
}

// currentValue mirrors what the backend reports: the latest reading for
// snapshot metrics and the window total for flows. Rows arrive ordered by day.
func currentValue(m domain.Metric) float64 {
	if domain.Classify(m.Key) == domain.Snapshot {
		if len(m.History) == 0 {
			return 0
		}
		return m.History[len(m.History)-1].Value
	}
	return domain.TotalOf(m)
}
