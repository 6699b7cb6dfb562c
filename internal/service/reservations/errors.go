package reservations

import "errors"

var (
	// ErrReservationNotFound retornado quando a reserva não é encontrada
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied retornado quando o solicitante não tem acesso à reserva
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel retornado quando a reserva não pode mais ser cancelada
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidTransition retornado em transição de status não permitida
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput retornado em dados de entrada inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
