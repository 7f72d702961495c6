package utils

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// TranslateDBError maps known Postgres error codes onto user-facing
// messages. Unrecognized errors collapse into ErrDatabaseError so the
// raw driver error never reaches a client.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ValidationError("a record with this value already exists")
		case pgForeignKeyViolation:
			return ValidationError("referenced record does not exist")
		case pgNotNullViolation:
			return ValidationError("a required field is missing")
		}
	}
	return ErrDatabaseError
}
