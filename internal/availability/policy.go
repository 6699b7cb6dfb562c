package availability

import "github.com/hublumi/booking-service/internal/domain"

// Policy define quais status de reserva consomem inventário.
//
// Reservas canceladas nunca bloqueiam. O tratamento de reservas concluídas
// é configurável: o sistema original as mantinha bloqueando datas futuras
// ("as unidades ainda estão fora", não "as unidades voltaram"), o que pode
// ou não ser a regra de negócio desejada.
type Policy struct {
	// CompletedBlocks indica se reservas concluídas continuam bloqueando
	CompletedBlocks bool
}

// DefaultPolicy política padrão: tudo exceto cancelada bloqueia
func DefaultPolicy() Policy {
	return Policy{CompletedBlocks: true}
}

// Blocks returns true if a reservation with the given status consumes inventory
func (p Policy) Blocks(status domain.ReservationStatus) bool {
	if status == domain.StatusCancelada {
		return false
	}
	if status == domain.StatusConcluida {
		return p.CompletedBlocks
	}
	return true
}
