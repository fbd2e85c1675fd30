package postgres

import (
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError translates driver errors into domain errors. conflictMsg is used
// for unique violations.
func mapError(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.Conflict(conflictMsg)
		case pgForeignKeyViolation:
			return apperror.BadRequest("Referenced record does not exist")
		}
	}
	return err
}

func offsetFor(page, pageSize int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * pageSize
}
