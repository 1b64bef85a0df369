package postgres

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"shelter-admin/internal/platform/apperr"
)

// classify traduce errores de pgx/pgconn a la taxonomía de apperr.
// Errores que ya traen kind (p.ej. NotFound por 0 filas afectadas) pasan tal cual.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.Wrap(apperr.ErrNotFound, "", err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperr.Unavailable(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return apperr.Conflict("record already exists", err)
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return apperr.Conflict("referenced record is missing or still in use", err)
		case pgErr.Code == pgerrcode.CheckViolation,
			pgErr.Code == pgerrcode.NotNullViolation,
			pgErr.Code == pgerrcode.StringDataRightTruncationDataException,
			pgErr.Code == pgerrcode.InvalidDatetimeFormat,
			pgErr.Code == pgerrcode.DatetimeFieldOverflow,
			pgErr.Code == pgerrcode.NumericValueOutOfRange,
			pgErr.Code == pgerrcode.InvalidTextRepresentation:
			return apperr.Wrap(apperr.ErrValidation, "value rejected by the database", err)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return apperr.Unavailable(err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return apperr.Unavailable(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperr.Unavailable(err)
	}
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperr.ErrValidation):
		return "validation"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	case errors.Is(err, apperr.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
