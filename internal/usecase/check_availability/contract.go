package check_availability

import (
	"context"
	"time"

	"github.com/hublumi/booking-service/internal/availability"
)

// AvailabilityEngine interface do motor de disponibilidade
type AvailabilityEngine interface {
	Compute(ctx context.Context, equipmentID int64, start, end time.Time) (*availability.Result, error)
}

// Logger interface para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
