package reservations

import (
	"context"

	"github.com/hublumi/booking-service/internal/domain"
)

// ReservationRepository interface do repositório de reservas
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByClient(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	ListByLocadoraWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger interface para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
