package postgres

import (
	"context"
	"database/sql"
)

// DB is the write side the point repository needs. Tests replace it with a
// fake that records statements.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type execDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &execDB{db: db}
}

func (e *execDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return e.db.ExecContext(ctx, query, args...)
}
