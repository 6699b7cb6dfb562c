package domain

import "time"

// LocadoraStatus status da conta da locadora
type LocadoraStatus string

const (
	LocadoraAtiva   LocadoraStatus = "ativo"
	LocadoraInativa LocadoraStatus = "inativo"
)

// Locadora represents a rental company that owns and lists equipment
type Locadora struct {
	ID                int64
	RazaoSocial       string
	CNPJ              string // único
	InscricaoEstadual string
	Contribuinte      string
	Email             string // único
	Telefone          string
	Endereco          string
	City              string
	State             string
	Status            LocadoraStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive returns true if the locadora account is active
func (l *Locadora) IsActive() bool {
	return l.Status == LocadoraAtiva
}
