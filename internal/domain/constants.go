package domain

import "time"

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinReservationQuantity = 1
	MaxReservationDays     = 365
	MaxTitleLength         = 200
	MaxDescriptionLength   = 2000
	MaxCancelReasonLength  = 500
)

// InactiveStatuses reservas que não consomem inventário.
// Usado na filtragem do motor de disponibilidade e nas listagens padrão.
var InactiveStatuses = []ReservationStatus{
	StatusCancelada,
}

// ActiveStatuses reservas que aparecem nas listagens padrão da locadora
var ActiveStatuses = []ReservationStatus{
	StatusPendente,
	StatusConfirmada,
	StatusConcluida,
}

// DateOnly normaliza o instante para a meia-noite UTC do mesmo dia.
// Todas as comparações de datas do serviço operam sobre dias, nunca horas.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// InclusiveDays conta os dias entre start e end, ambos inclusos.
// start == end conta como 1 dia (fórmula de diária do sistema original).
func InclusiveDays(start, end time.Time) int {
	s := DateOnly(start)
	e := DateOnly(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
