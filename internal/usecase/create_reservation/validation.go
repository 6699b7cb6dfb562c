package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hublumi/booking-service/internal/domain"
)

// validateRequest valida os dados de entrada da requisição
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if req.Quantity < domain.MinReservationQuantity {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinReservationQuantity)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	return nil
}

// validateDates valida o período da locação contra a data atual.
// Datas são comparadas dia a dia; reservar começando hoje é permitido.
func validateDates(start, end, now time.Time) error {
	startDay := domain.DateOnly(start)
	endDay := domain.DateOnly(end)
	today := domain.DateOnly(now)

	if endDay.Before(startDay) {
		return fmt.Errorf("%w: %s < %s", ErrInvalidRange,
			endDay.Format(domain.DateFormat), startDay.Format(domain.DateFormat))
	}

	if startDay.Before(today) {
		return ErrInvalidDate
	}

	if domain.InclusiveDays(startDay, endDay) > domain.MaxReservationDays {
		return fmt.Errorf("%w: max %d days", ErrRangeTooLong, domain.MaxReservationDays)
	}

	return nil
}
