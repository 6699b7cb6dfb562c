package domain

import "time"

// ReservationStatus represents the status of a rental reservation
type ReservationStatus string

const (
	StatusPendente   ReservationStatus = "pendente"
	StatusConfirmada ReservationStatus = "confirmada"
	StatusCancelada  ReservationStatus = "cancelada"
	StatusConcluida  ReservationStatus = "concluida"
)

// Reservation represents a request to rent a quantity of one equipment
// item over a closed date range (both ends inclusive)
type Reservation struct {
	ID          int64
	EquipmentID int64
	LocadoraID  int64
	ClientID    int64
	StartDate   time.Time // data apenas, sem componente de hora
	EndDate     time.Time // inclusiva, EndDate >= StartDate
	Quantity    int
	Status      ReservationStatus
	TotalPrice  float64

	// Denormalized client data for history
	ClientName  string
	ClientEmail string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelada
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPendente || r.Status == StatusConfirmada
}

// CoversDay returns true if the reservation interval contains the given day.
// Both interval ends are inclusive: a reservation ending on the day a query
// window starts still covers that day.
func (r *Reservation) CoversDay(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(r.StartDate)) && !d.After(DateOnly(r.EndDate))
}

// RentalDays returns the number of billable days, both ends inclusive
func (r *Reservation) RentalDays() int {
	return InclusiveDays(r.StartDate, r.EndDate)
}

// ReservationsFilter filtro para listagem de reservas de uma locadora
type ReservationsFilter struct {
	LocadoraID      int64              // Obrigatório
	EquipmentID     *int64             // Filtro por equipamento (opcional)
	StartDate       *time.Time         // Início do período (opcional)
	EndDate         *time.Time         // Fim do período (opcional)
	Status          *ReservationStatus // Filtro por status (opcional)
	IncludeInactive bool               // Incluir reservas canceladas
}

// ValidTransitions transições de status permitidas para a locadora.
// Cancelamento tem fluxo próprio (Cancel), não passa por aqui.
var ValidTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPendente:   {StatusConfirmada},
	StatusConfirmada: {StatusConcluida},
}

// CanTransitionTo returns true if the status change is a legal transition
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range ValidTransitions[r.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}
