package equipments

import (
	"context"

	"github.com/hublumi/booking-service/internal/domain"
)

// EquipmentRepository interface do repositório de equipamentos
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, filter domain.EquipmentFilter) ([]*domain.Equipment, error)
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
}

// LocadoraRepository interface do repositório de locadoras
type LocadoraRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Locadora, error)
}

// Logger interface para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
