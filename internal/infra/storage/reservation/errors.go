package reservation

import "errors"

var (
	// ErrReservationNotFound retornado quando a reserva não é encontrada
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrBuildQuery retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow retornado quando o scan do resultado falha
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
