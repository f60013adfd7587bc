package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrPreconditionFailed means a guarded update matched no row because the
	// row was not in the expected state.
	ErrPreconditionFailed = errors.New("row not in expected state")
	// ErrDuplicate means an insert hit a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
)

// DB is the subset of *pgxpool.Pool used by the repositories
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}
