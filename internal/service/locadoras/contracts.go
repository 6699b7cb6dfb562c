package locadoras

import (
	"context"

	"github.com/hublumi/booking-service/internal/domain"
)

// LocadoraRepository interface do repositório de locadoras
type LocadoraRepository interface {
	Create(ctx context.Context, locadora *domain.Locadora) (*domain.Locadora, error)
	GetByID(ctx context.Context, id int64) (*domain.Locadora, error)
	List(ctx context.Context) ([]*domain.Locadora, error)
	Update(ctx context.Context, locadora *domain.Locadora) error
}

// Logger interface para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
