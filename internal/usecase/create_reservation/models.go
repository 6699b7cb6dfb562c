package create_reservation

import "time"

// Request modelo de requisição de criação de reserva
type Request struct {
	ClientID    int64     // ID do cliente autenticado
	EquipmentID int64     // ID do equipamento
	StartDate   time.Time // primeiro dia da locação (sem hora)
	EndDate     time.Time // último dia da locação, inclusivo
	Quantity    int       // unidades solicitadas, >= 1
	ClientName  string    // denormalizado na reserva
	ClientEmail string    // denormalizado na reserva
}

// Response modelo de resposta com a reserva criada
type Response struct {
	ID          int64
	EquipmentID int64
	LocadoraID  int64
	ClientID    int64
	StartDate   time.Time
	EndDate     time.Time
	Quantity    int
	Status      string
	TotalPrice  float64 // diária x diárias (inclusivas) x quantidade

	ClientName  string
	ClientEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
}
