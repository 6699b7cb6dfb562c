package models

import (
	"errors"
	"time"

	"github.com/hublumi/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus retornado quando o status informado não existe
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// CancelReservationRequest pedido de cancelamento de reserva
type CancelReservationRequest struct {
	RequesterID        int64  `json:"requesterId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest pedido de transição de status (confirmar / concluir)
type UpdateStatusRequest struct {
	RequesterID int64  `json:"requesterId"`
	Status      string `json:"status"`
}

// GetClientReservationsRequest histórico de reservas de um cliente
type GetClientReservationsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// GetLocadoraReservationsRequest listagem de reservas de uma locadora
type GetLocadoraReservationsRequest struct {
	RequesterID     int64      `json:"requesterId"`
	LocadoraID      int64      `json:"locadoraId"`
	EquipmentID     *int64     `json:"equipmentId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converte o request no filtro de domínio
func (r *GetLocadoraReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		LocadoraID:      r.LocadoraID,
		EquipmentID:     r.EquipmentID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// ReservationResponse dados de uma reserva
type ReservationResponse struct {
	ID          int64   `json:"id"`
	EquipmentID int64   `json:"equipmentId"`
	LocadoraID  int64   `json:"locadoraId"`
	ClientID    int64   `json:"clientId"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	StartDate   string  `json:"startDate"` // "2025-10-15"
	EndDate     string  `json:"endDate"`   // "2025-10-18", inclusiva
	Quantity    int     `json:"quantity"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"totalPrice"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse lista de reservas
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation converte o modelo de domínio em DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		EquipmentID:        r.EquipmentID,
		LocadoraID:         r.LocadoraID,
		ClientID:           r.ClientID,
		ClientName:         r.ClientName,
		ClientEmail:        r.ClientEmail,
		StartDate:          r.StartDate.Format(domain.DateFormat),
		EndDate:            r.EndDate.Format(domain.DateFormat),
		Quantity:           r.Quantity,
		Status:             string(r.Status),
		TotalPrice:         r.TotalPrice,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList converte a lista de modelos de domínio em DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations[i] = *r
		}
	}

	return resp
}

// ToDomainReservationStatus converte e valida a string de status
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.StatusPendente,
		domain.StatusConfirmada,
		domain.StatusCancelada,
		domain.StatusConcluida,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
