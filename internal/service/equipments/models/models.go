package models

import (
	"time"

	"github.com/hublumi/booking-service/internal/domain"
)

// Request models

// CreateEquipmentRequest cadastro de equipamento
type CreateEquipmentRequest struct {
	RequesterID   int64   `json:"requesterId"`
	LocadoraID    int64   `json:"locadoraId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	DailyRate     float64 `json:"dailyRate"`
	TotalQuantity int     `json:"totalQuantity"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ShortAddress  string  `json:"shortAddress"`
	PhotoMain     *string `json:"photoMain,omitempty"`
	PhotoExtra1   *string `json:"photoExtra1,omitempty"`
	PhotoExtra2   *string `json:"photoExtra2,omitempty"`
}

// UpdateEquipmentRequest atualização de equipamento.
// Campos nil não são alterados (atualização parcial, como o painel da
// locadora envia).
type UpdateEquipmentRequest struct {
	RequesterID   int64    `json:"requesterId"`
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	DailyRate     *float64 `json:"dailyRate,omitempty"`
	TotalQuantity *int     `json:"totalQuantity,omitempty"`
	ListingStatus *string  `json:"listingStatus,omitempty"`
	City          *string  `json:"city,omitempty"`
	State         *string  `json:"state,omitempty"`
	ShortAddress  *string  `json:"shortAddress,omitempty"`
	PhotoMain     *string  `json:"photoMain,omitempty"`
	PhotoExtra1   *string  `json:"photoExtra1,omitempty"`
	PhotoExtra2   *string  `json:"photoExtra2,omitempty"`
}

// ListEquipmentsRequest filtros do catálogo
type ListEquipmentsRequest struct {
	LocadoraID *int64  `json:"locadoraId,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Category   *string `json:"category,omitempty"`
	OnlyListed bool    `json:"onlyListed,omitempty"`
}

// ToDomainFilter converte o request no filtro de domínio
func (r *ListEquipmentsRequest) ToDomainFilter() domain.EquipmentFilter {
	return domain.EquipmentFilter{
		LocadoraID: r.LocadoraID,
		City:       r.City,
		State:      r.State,
		Category:   r.Category,
		OnlyListed: r.OnlyListed,
	}
}

// Response models

// EquipmentResponse dados de um equipamento
type EquipmentResponse struct {
	ID            int64   `json:"id"`
	LocadoraID    int64   `json:"locadoraId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	DailyRate     float64 `json:"dailyRate"`
	TotalQuantity int     `json:"totalQuantity"`
	ListingStatus string  `json:"listingStatus"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ShortAddress  string  `json:"shortAddress"`
	PhotoMain     *string `json:"photoMain,omitempty"`
	PhotoExtra1   *string `json:"photoExtra1,omitempty"`
	PhotoExtra2   *string `json:"photoExtra2,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EquipmentListResponse lista de equipamentos
type EquipmentListResponse struct {
	Equipments []EquipmentResponse `json:"equipments"`
}

// FromDomainEquipment converte o modelo de domínio em DTO
func FromDomainEquipment(e *domain.Equipment) *EquipmentResponse {
	if e == nil {
		return nil
	}

	return &EquipmentResponse{
		ID:            e.ID,
		LocadoraID:    e.LocadoraID,
		Title:         e.Title,
		Description:   e.Description,
		Category:      e.Category,
		DailyRate:     e.DailyRate,
		TotalQuantity: e.TotalQuantity,
		ListingStatus: string(e.ListingStatus),
		City:          e.City,
		State:         e.State,
		ShortAddress:  e.ShortAddress,
		PhotoMain:     e.PhotoMain,
		PhotoExtra1:   e.PhotoExtra1,
		PhotoExtra2:   e.PhotoExtra2,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// FromDomainEquipmentList converte a lista de modelos de domínio em DTO
func FromDomainEquipmentList(equipments []*domain.Equipment) *EquipmentListResponse {
	if equipments == nil {
		return &EquipmentListResponse{
			Equipments: []EquipmentResponse{},
		}
	}

	resp := &EquipmentListResponse{
		Equipments: make([]EquipmentResponse, len(equipments)),
	}

	for i, equipment := range equipments {
		if e := FromDomainEquipment(equipment); e != nil {
			resp.Equipments[i] = *e
		}
	}

	return resp
}
