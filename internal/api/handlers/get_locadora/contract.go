package get_locadora

import (
	"context"

	"github.com/hublumi/booking-service/internal/service/locadoras/models"
)

type LocadoraService interface {
	GetByID(ctx context.Context, id int64) (*models.LocadoraResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
