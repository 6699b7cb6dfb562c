package models

import (
	"time"

	"github.com/hublumi/booking-service/internal/domain"
)

// Request models

// CreateLocadoraRequest cadastro de locadora
type CreateLocadoraRequest struct {
	RazaoSocial       string `json:"razaoSocial"`
	CNPJ              string `json:"cnpj"`
	InscricaoEstadual string `json:"inscricaoEstadual"`
	Contribuinte      string `json:"contribuinte"`
	Email             string `json:"email"`
	Telefone          string `json:"telefone"`
	Endereco          string `json:"endereco"`
	City              string `json:"city"`
	State             string `json:"state"`
}

// UpdateLocadoraRequest atualização cadastral.
// Campos nil não são alterados. CNPJ não é alterável.
type UpdateLocadoraRequest struct {
	RequesterID       int64   `json:"requesterId"`
	RazaoSocial       *string `json:"razaoSocial,omitempty"`
	InscricaoEstadual *string `json:"inscricaoEstadual,omitempty"`
	Contribuinte      *string `json:"contribuinte,omitempty"`
	Email             *string `json:"email,omitempty"`
	Telefone          *string `json:"telefone,omitempty"`
	Endereco          *string `json:"endereco,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	Status            *string `json:"status,omitempty"`
}

// Response models

// LocadoraResponse dados cadastrais de uma locadora
type LocadoraResponse struct {
	ID                int64     `json:"id"`
	RazaoSocial       string    `json:"razaoSocial"`
	CNPJ              string    `json:"cnpj"`
	InscricaoEstadual string    `json:"inscricaoEstadual,omitempty"`
	Contribuinte      string    `json:"contribuinte,omitempty"`
	Email             string    `json:"email"`
	Telefone          string    `json:"telefone,omitempty"`
	Endereco          string    `json:"endereco,omitempty"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// LocadoraListResponse lista de locadoras
type LocadoraListResponse struct {
	Locadoras []LocadoraResponse `json:"locadoras"`
}

// FromDomainLocadora converte o modelo de domínio em DTO
func FromDomainLocadora(l *domain.Locadora) *LocadoraResponse {
	if l == nil {
		return nil
	}

	return &LocadoraResponse{
		ID:                l.ID,
		RazaoSocial:       l.RazaoSocial,
		CNPJ:              l.CNPJ,
		InscricaoEstadual: l.InscricaoEstadual,
		Contribuinte:      l.Contribuinte,
		Email:             l.Email,
		Telefone:          l.Telefone,
		Endereco:          l.Endereco,
		City:              l.City,
		State:             l.State,
		Status:            string(l.Status),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// FromDomainLocadoraList converte a lista de modelos de domínio em DTO
func FromDomainLocadoraList(locadoras []*domain.Locadora) *LocadoraListResponse {
	if locadoras == nil {
		return &LocadoraListResponse{
			Locadoras: []LocadoraResponse{},
		}
	}

	resp := &LocadoraListResponse{
		Locadoras: make([]LocadoraResponse, len(locadoras)),
	}

	for i, locadora := range locadoras {
		if l := FromDomainLocadora(locadora); l != nil {
			resp.Locadoras[i] = *l
		}
	}

	return resp
}
