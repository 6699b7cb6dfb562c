package list_equipments

import (
	"context"

	"github.com/hublumi/booking-service/internal/service/equipments/models"
)

type EquipmentService interface {
	List(ctx context.Context, req *models.ListEquipmentsRequest) (*models.EquipmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
