package pg

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// WrapErr annotates a driver error with what the repository was doing and classifies it:
// unique violations become domain.ErrDuplicateKey, any other failure domain.ErrUnknown.
// The driver message is kept so the operator sees the underlying store error.
func WrapErr(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	kind := domain.ErrUnknown
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		kind = domain.ErrDuplicateKey
	}

	return fmt.Errorf("%s: %w: %w", fmt.Sprintf(format, args...), kind, err)
}
