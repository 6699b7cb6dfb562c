package availability

import (
	"context"

	"github.com/hublumi/booking-service/internal/domain"
)

// EquipmentRepository interface do repositório de equipamentos.
// GetByID deve retornar equipment.ErrEquipmentNotFound quando o id não existe.
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// ReservationRepository interface do repositório de reservas.
// ListByEquipment retorna todas as reservas do equipamento, independente de
// status; o motor aplica a política de bloqueio por conta própria.
type ReservationRepository interface {
	ListByEquipment(ctx context.Context, equipmentID int64) ([]*domain.Reservation, error)
}
