package pkg

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgDataExceptionClass  = "22"
)

// PgErrorCode returns the SQLSTATE carried by err, or "" when err does not come from postgres.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports a duplicate key, e.g. a workout type name taken twice.
func IsUniqueViolation(err error) bool {
	return PgErrorCode(err) == pgUniqueViolation
}

// IsForeignKeyViolation reports a reference to a missing row, e.g. an unknown workout type id.
func IsForeignKeyViolation(err error) bool {
	return PgErrorCode(err) == pgForeignKeyViolation
}

// IsDataException reports a value postgres refused to store, e.g. an integer
// out of range or a string too long for its column.
func IsDataException(err error) bool {
	return strings.HasPrefix(PgErrorCode(err), pgDataExceptionClass)
}
