package db

import (
	"context"
	"database/sql"
)

// DBTX is the execution surface shared by *sql.DB and *sql.Tx. Repositories
// take a DBTX so the schedule-replace path can hand them a transaction while
// everything else runs on the plain connection.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
