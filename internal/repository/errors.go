package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/foodie/internal/port"
)

const uniqueViolation = "23505"

// mapDBError classifies a driver error into one of the port sentinels.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", port.ErrDuplicated, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %w", port.ErrDatabase, err)
	}

	return fmt.Errorf("%w: %w", port.ErrPersistence, err)
}
