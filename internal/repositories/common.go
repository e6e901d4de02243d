package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intdb "backoffice/internal/db"
)

// ErrNotFound is returned when a lookup or write matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique index rejects a write.
var ErrDuplicate = errors.New("duplicate record")

type rowScanner interface {
	Scan(dest ...any) error
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", what, err)
}

// execOne runs a write expected to touch exactly one row.
func execOne(ctx context.Context, db *sql.DB, what, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeErr(err, what)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", what, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// writeErr maps unique index violations to ErrDuplicate.
func writeErr(err error, what string) error {
	if intdb.IsDuplicateKey(err) {
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", what, err)
}
