package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapErrorConstraintCodes(t *testing.T) {
	for _, code := range []string{pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation} {
		err := mapError("insert tasks", &pgconn.PgError{Code: code, ConstraintName: "tasks_pkey"})
		if !errors.Is(err, ErrConstraint) {
			t.Errorf("code %s: expected ErrConstraint, got %v", code, err)
		}
	}
}

func TestMapErrorOtherErrors(t *testing.T) {
	err := mapError("insert tasks", &pgconn.PgError{Code: "57P01"})
	if errors.Is(err, ErrConstraint) {
		t.Errorf("operational error mapped to ErrConstraint: %v", err)
	}
	if mapError("insert tasks", nil) != nil {
		t.Error("nil error should map to nil")
	}
	plain := errors.New("broken pipe")
	if !errors.Is(mapError("insert tasks", plain), plain) {
		t.Error("non-pg errors should stay wrapped")
	}
}
