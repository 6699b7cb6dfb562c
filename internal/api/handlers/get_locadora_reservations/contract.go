package get_locadora_reservations

import (
	"context"

	"github.com/hublumi/booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetLocadoraReservations(ctx context.Context, req *models.GetLocadoraReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
