package create_reservation

import (
	"time"

	"github.com/hublumi/booking-service/internal/domain"
	createReservation "github.com/hublumi/booking-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	EquipmentID int64  `json:"equipmentId"`
	StartDate   string `json:"startDate"` // "2025-10-15"
	EndDate     string `json:"endDate"`   // "2025-10-18", inclusiva
	Quantity    int    `json:"quantity"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64   `json:"id"`
	EquipmentID int64   `json:"equipmentId"`
	LocadoraID  int64   `json:"locadoraId"`
	ClientID    int64   `json:"clientId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Quantity    int     `json:"quantity"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"totalPrice"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest converte o HTTP request em modelo do use case
func (r *CreateReservationRequest) ToUseCaseRequest(clientID int64) (*createReservation.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ClientID:    clientID,
		EquipmentID: r.EquipmentID,
		StartDate:   startDate,
		EndDate:     endDate,
		Quantity:    r.Quantity,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
	}, nil
}

// FromUseCaseResponse converte a resposta do use case em HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		EquipmentID: resp.EquipmentID,
		LocadoraID:  resp.LocadoraID,
		ClientID:    resp.ClientID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		Quantity:    resp.Quantity,
		Status:      resp.Status,
		TotalPrice:  resp.TotalPrice,
		ClientName:  resp.ClientName,
		ClientEmail: resp.ClientEmail,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
