package postgres

import (
	"errors"
	"fmt"

	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// classifyError maps transient postgres contention to the retryable conflict
// error; everything else is wrapped as-is for the coordinator to treat as
// internal.
func classifyError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected:
			return &domain.ConflictError{Msg: fmt.Sprintf("%s: transient contention (%s)", msg, pgErr.Code)}
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
