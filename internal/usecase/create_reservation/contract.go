package create_reservation

import (
	"context"
	"time"

	"github.com/hublumi/booking-service/internal/availability"
	"github.com/hublumi/booking-service/internal/domain"
)

// ReservationRepository interface do repositório de reservas
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// EquipmentRepository interface do repositório de equipamentos
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// LocadoraRepository interface do repositório de locadoras
type LocadoraRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Locadora, error)
}

// AvailabilityEngine interface do motor de disponibilidade
type AvailabilityEngine interface {
	CanSatisfy(ctx context.Context, equipmentID int64, start, end time.Time, quantity int) (bool, *availability.Result, error)
}

// TransactionManager interface para controle de transações
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interface para obter o tempo atual (facilita os testes)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider provedor de tempo real para produção
type RealTimeProvider struct{}

// Now retorna o tempo atual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
