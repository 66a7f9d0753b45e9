package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/infohub/infohub-api/internal/core/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// classify turns constraint violations into domain errors and wraps the rest.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return domain.NewValidationError(domain.FieldError{
				Field:   pgErr.ConstraintName,
				Message: "referenced record does not exist",
			})
		case codeCheckViolation:
			return domain.NewValidationError(domain.FieldError{
				Field:   pgErr.ConstraintName,
				Message: pgErr.Message,
			})
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
