package update_equipment

import (
	"context"

	"github.com/hublumi/booking-service/internal/service/equipments/models"
)

type EquipmentService interface {
	Update(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.EquipmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
