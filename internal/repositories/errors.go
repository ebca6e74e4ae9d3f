package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation is returned when an insert hits a unique constraint.
// Services translate it into their own conflict errors.
var ErrUniqueViolation = errors.New("unique constraint violation")

// pgUniqueViolationCode is the PostgreSQL error code for unique_violation.
const pgUniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}
