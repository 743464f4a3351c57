package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConstraint marks a database constraint violation. The pipeline
// treats any wrapped ErrConstraint as fatal: a violated constraint means
// the generator produced an inconsistent batch, and continuing would
// leave a partially written dataset that looks valid.
var ErrConstraint = errors.New("constraint violation")

// Postgres error classes that indicate a broken batch rather than an
// operational failure.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation:
			return fmt.Errorf("%s: %s (%s): %w", op, pgErr.Message, pgErr.ConstraintName, ErrConstraint)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
