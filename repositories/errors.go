package repositories

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func IsUniqueViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.UniqueViolation
}

func IsForeignKeyViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.ForeignKeyViolation
}

// UniqueViolationField derives the conflicting column from the
// constraint name of a unique violation. Postgres default-names unique
// constraints "<table>_<column>_key", which is what our migrations
// rely on; anything else yields "".
func UniqueViolationField(err error, table string) string {
	var pgxErr *pgconn.PgError
	if !errors.As(err, &pgxErr) || pgxErr.Code != pgerrcode.UniqueViolation {
		return ""
	}

	constraint := pgxErr.ConstraintName
	if !strings.HasPrefix(constraint, table+"_") || !strings.HasSuffix(constraint, "_key") {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(constraint, table+"_"), "_key")
}
