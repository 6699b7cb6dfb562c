package list_locadoras

import (
	"context"

	"github.com/hublumi/booking-service/internal/service/locadoras/models"
)

type LocadoraService interface {
	List(ctx context.Context) (*models.LocadoraListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
