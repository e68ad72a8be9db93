package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
)

// DB is the slice of pgxpool.Pool the repositories need. Declaring it
// here lets tests substitute a mock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// persistence wraps a store failure, flagging integrity-constraint
// violations (SQLSTATE class 23) so handlers can tell them from
// infrastructure errors.
func persistence(op string, err error) error {
	var pgErr *pgconn.PgError
	constraint := errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23")
	return &domainerr.PersistenceError{Op: op, Err: err, Constraint: constraint}
}

// wrapQueryErr translates a pgx error into the domain taxonomy:
// pgx.ErrNoRows becomes ErrNotFound, everything else a
// PersistenceError carrying the cause.
func wrapQueryErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainerr.ErrNotFound
	}
	return persistence(op, err)
}
