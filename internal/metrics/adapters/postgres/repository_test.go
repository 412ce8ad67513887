package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"account-analytics-service/internal/metrics/core/domain"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *float64:
			v, ok := row.values[i].(float64)
			if !ok {
				return errors.New("type assertion to float64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return nil, nil
}

// ------------------------------------------------------------
// ACCOUNTS
// ------------------------------------------------------------

func TestAccountRepository_ListAccounts(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM social_accounts") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{"acc_1", "Brand IG", "instagram", "active"}},
					{values: []any{"acc_2", "Brand YT", "youtube", "error"}},
				},
			}, nil
		},
	}

	repo := NewAccountRepository(db)

	accounts, err := repo.ListAccounts(context.Background(), []string{"acc_1", "acc_2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[1].Status != domain.AccountStatusError || accounts[1].Fetchable() {
		t.Fatalf("expected acc_2 to be in error state, got %+v", accounts[1])
	}
	if len(db.lastArgs) != 1 {
		t.Fatalf("expected 1 arg (id array), got %d", len(db.lastArgs))
	}
}

func TestAccountRepository_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db error")
		},
	}

	_, err := NewAccountRepository(db).ListAccounts(context.Background(), []string{"a"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// ------------------------------------------------------------
// DAILY METRICS
// ------------------------------------------------------------

func TestMetricsRepository_GroupsByKey(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM account_metric_daily") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{"followers", day(1), float64(990)}},
					{values: []any{"followers", day(2), float64(1000)}},
					{values: []any{"reach", day(1), float64(10)}},
					{values: []any{"reach", day(2), float64(20)}},
					{values: []any{"reach", day(3), float64(15)}},
				},
			}, nil
		},
	}

	repo := NewMetricsRepository(db)
	repo.now = func() time.Time { return time.Date(2024, 1, 8, 13, 0, 0, 0, time.UTC) }

	metrics, err := repo.FetchAccountMetrics(context.Background(), "acc_1", domain.Window7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(metrics) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(metrics))
	}

	followers, reach := metrics[0], metrics[1]
	if followers.Key != "followers" || followers.CurrentValue != 1000 {
		t.Fatalf("expected followers current=1000, got %+v", followers)
	}
	if reach.Key != "reach" || reach.CurrentValue != 45 {
		t.Fatalf("expected reach current=45, got %+v", reach)
	}
	if reach.History[0].Date != "2024-01-01" {
		t.Fatalf("expected date 2024-01-01, got %s", reach.History[0].Date)
	}

	if db.lastArgs[0] != "acc_1" {
		t.Fatalf("expected account arg acc_1, got %v", db.lastArgs[0])
	}
	from, to := db.lastArgs[1].(time.Time), db.lastArgs[2].(time.Time)
	if !to.Equal(day(8)) || !from.Equal(day(1)) {
		t.Fatalf("unexpected range: %s - %s", from, to)
	}
}

func TestMetricsRepository_Empty(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{}, nil
		},
	}

	metrics, err := NewMetricsRepository(db).FetchAccountMetrics(context.Background(), "acc_1", domain.Window30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(metrics) != 0 {
		t.Fatalf("expected no metrics, got %d", len(metrics))
	}
}

func TestMetricsRepository_RowsErr(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("rows err")}, nil
		},
	}

	_, err := NewMetricsRepository(db).FetchAccountMetrics(context.Background(), "acc_1", domain.Window30)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// ------------------------------------------------------------
// SQL WRAPPER
// ------------------------------------------------------------

var (
	_ RowScanner = (*sql.Rows)(nil)
	_ DB         = (*queryDB)(nil)
)

func TestNewSQLDB_WrapsDatabase(t *testing.T) {
	db := NewSQLDB(&sql.DB{})
	if _, ok := db.(*queryDB); !ok {
		t.Fatalf("expected *queryDB, got %T", db)
	}
}
