package domain

import "time"

// ListingStatus flag de listagem do equipamento no catálogo.
// Não confundir com a disponibilidade calculada por período: um equipamento
// "disponivel" pode não ter unidades livres nas datas consultadas.
type ListingStatus string

const (
	ListingDisponivel   ListingStatus = "disponivel"
	ListingIndisponivel ListingStatus = "indisponivel"
)

// Equipment represents a rentable lighting equipment item owned by a locadora
type Equipment struct {
	ID            int64
	LocadoraID    int64
	Title         string
	Description   string
	Category      string
	DailyRate     float64 // R$ por diária
	TotalQuantity int     // unidades em estoque, >= 0
	ListingStatus ListingStatus

	City         string
	State        string
	ShortAddress string

	PhotoMain   *string
	PhotoExtra1 *string
	PhotoExtra2 *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsListed returns true if the equipment appears in the public catalog
func (e *Equipment) IsListed() bool {
	return e.ListingStatus == ListingDisponivel
}

// EquipmentFilter filtro para listagem do catálogo
type EquipmentFilter struct {
	LocadoraID *int64
	City       *string
	State      *string
	Category   *string
	OnlyListed bool // apenas equipamentos com status "disponivel"
}
