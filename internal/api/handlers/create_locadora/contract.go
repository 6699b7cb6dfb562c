package create_locadora

import (
	"context"

	"github.com/hublumi/booking-service/internal/service/locadoras/models"
)

type LocadoraService interface {
	Create(ctx context.Context, req *models.CreateLocadoraRequest) (*models.LocadoraResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
