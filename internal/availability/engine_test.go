package availability

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hublumi/booking-service/internal/domain"
	equipmentRepo "github.com/hublumi/booking-service/internal/infra/storage/equipment"
)

type fakeEquipments struct {
	equipments map[int64]*domain.Equipment
}

func (f *fakeEquipments) GetByID(_ context.Context, id int64) (*domain.Equipment, error) {
	e, ok := f.equipments[id]
	if !ok {
		return nil, equipmentRepo.ErrEquipmentNotFound
	}
	return e, nil
}

type fakeReservations struct {
	reservations []*domain.Reservation
}

func (f *fakeReservations) ListByEquipment(_ context.Context, equipmentID int64) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.EquipmentID == equipmentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func reservation(equipmentID int64, start, end string, quantity int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		EquipmentID: equipmentID,
		StartDate:   date(start),
		EndDate:     date(end),
		Quantity:    quantity,
		Status:      status,
	}
}

func newTestEngine(total int, reservations ...*domain.Reservation) *Engine {
	return NewEngine(
		&fakeEquipments{equipments: map[int64]*domain.Equipment{
			1: {ID: 1, TotalQuantity: total},
		}},
		&fakeReservations{reservations: reservations},
		DefaultPolicy(),
	)
}

func TestEngine_Compute_NoReservations(t *testing.T) {
	engine := newTestEngine(5)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalQuantity)
	assert.Equal(t, 0, result.PeakDemand)
	assert.Equal(t, 5, result.Available)
}

func TestEngine_Compute_SingleOverlap(t *testing.T) {
	engine := newTestEngine(5,
		reservation(1, "2026-10-03", "2026-10-05", 2, domain.StatusConfirmada),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.PeakDemand)
	assert.Equal(t, 3, result.Available)
}

func TestEngine_Compute_PeakIsConcurrentNotTotal(t *testing.T) {
	// Duas reservas que não se sobrepõem: pico é o máximo, não a soma
	engine := newTestEngine(5,
		reservation(1, "2026-10-01", "2026-10-02", 3, domain.StatusConfirmada),
		reservation(1, "2026-10-05", "2026-10-06", 2, domain.StatusConfirmada),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	assert.Equal(t, 3, result.PeakDemand)
	assert.Equal(t, 2, result.Available)
}

func TestEngine_Compute_OverlappingReservationsSum(t *testing.T) {
	// Nos dias 03 e 04 as duas reservas coexistem: demanda 2+2
	engine := newTestEngine(5,
		reservation(1, "2026-10-01", "2026-10-04", 2, domain.StatusConfirmada),
		reservation(1, "2026-10-03", "2026-10-06", 2, domain.StatusPendente),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	assert.Equal(t, 4, result.PeakDemand)
	assert.Equal(t, 1, result.Available)
}

func TestEngine_Compute_CancelledReservationsIgnored(t *testing.T) {
	engine := newTestEngine(5,
		reservation(1, "2026-10-01", "2026-10-07", 5, domain.StatusCancelada),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	assert.Equal(t, 0, result.PeakDemand)
	assert.Equal(t, 5, result.Available)
}

func TestEngine_Compute_AdjacentDaysBothBlocked(t *testing.T) {
	// Intervalos inclusivos nas duas pontas: reserva terminando no dia em
	// que a consulta começa ainda ocupa aquele dia
	engine := newTestEngine(1,
		reservation(1, "2026-10-01", "2026-10-03", 1, domain.StatusConfirmada),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-03"), date("2026-10-05"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Available)

	// No dia seguinte ao fim, a unidade volta
	result, err = engine.Compute(context.Background(), 1, date("2026-10-04"), date("2026-10-05"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Available)
}

func TestEngine_Compute_BackToBackReservationsShareDay(t *testing.T) {
	// Reserva que termina dia 03 e reserva que começa dia 03 coexistem
	// naquele dia
	engine := newTestEngine(2,
		reservation(1, "2026-10-01", "2026-10-03", 1, domain.StatusConfirmada),
		reservation(1, "2026-10-03", "2026-10-05", 1, domain.StatusConfirmada),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-03"), date("2026-10-03"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.PeakDemand)
	assert.Equal(t, 0, result.Available)
}

func TestEngine_Compute_SingleDayQuery(t *testing.T) {
	engine := newTestEngine(3,
		reservation(1, "2026-10-02", "2026-10-02", 1, domain.StatusPendente),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-02"), date("2026-10-02"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Available)
}

func TestEngine_Compute_OverbookingClampedToZero(t *testing.T) {
	// Dados com overbooking (demanda acima do estoque) não produzem
	// disponibilidade negativa
	engine := newTestEngine(2,
		reservation(1, "2026-10-01", "2026-10-05", 2, domain.StatusConfirmada),
		reservation(1, "2026-10-02", "2026-10-04", 3, domain.StatusConfirmada),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-05"))
	require.NoError(t, err)

	assert.Equal(t, 5, result.PeakDemand)
	assert.Equal(t, 0, result.Available)
}

func TestEngine_Compute_ReservationsOutsideWindowIgnored(t *testing.T) {
	engine := newTestEngine(4,
		reservation(1, "2026-09-01", "2026-09-30", 4, domain.StatusConfirmada),
		reservation(1, "2026-11-01", "2026-11-10", 4, domain.StatusConfirmada),
	)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	assert.Equal(t, 0, result.PeakDemand)
	assert.Equal(t, 4, result.Available)
}

func TestEngine_Compute_ZeroQuantityEquipment(t *testing.T) {
	engine := newTestEngine(0)

	result, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Available)
}

func TestEngine_Compute_InvalidRange(t *testing.T) {
	engine := newTestEngine(5)

	_, err := engine.Compute(context.Background(), 1, date("2026-10-07"), date("2026-10-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestEngine_Compute_EquipmentNotFound(t *testing.T) {
	engine := newTestEngine(5)

	_, err := engine.Compute(context.Background(), 99, date("2026-10-01"), date("2026-10-07"))
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestEngine_Compute_Idempotent(t *testing.T) {
	engine := newTestEngine(5,
		reservation(1, "2026-10-01", "2026-10-04", 2, domain.StatusConfirmada),
		reservation(1, "2026-10-03", "2026-10-06", 1, domain.StatusPendente),
	)

	first, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	second, err := engine.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Compute_CompletedBlocksPolicy(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(1, "2026-10-01", "2026-10-07", 2, domain.StatusConcluida),
	}
	equipments := &fakeEquipments{equipments: map[int64]*domain.Equipment{
		1: {ID: 1, TotalQuantity: 5},
	}}

	blocking := NewEngine(equipments, &fakeReservations{reservations: reservations},
		Policy{CompletedBlocks: true})
	result, err := blocking.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Available)

	releasing := NewEngine(equipments, &fakeReservations{reservations: reservations},
		Policy{CompletedBlocks: false})
	result, err = releasing.Compute(context.Background(), 1, date("2026-10-01"), date("2026-10-07"))
	require.NoError(t, err)
	assert.Equal(t, 5, result.Available)
}

func TestEngine_CanSatisfy(t *testing.T) {
	engine := newTestEngine(3,
		reservation(1, "2026-10-01", "2026-10-05", 2, domain.StatusConfirmada),
	)

	ok, result, err := engine.CanSatisfy(context.Background(), 1, date("2026-10-02"), date("2026-10-04"), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, result.Available)

	ok, _, err = engine.CanSatisfy(context.Background(), 1, date("2026-10-02"), date("2026-10-04"), 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_CanSatisfy_InvalidQuantity(t *testing.T) {
	engine := newTestEngine(3)

	_, _, err := engine.CanSatisfy(context.Background(), 1, date("2026-10-01"), date("2026-10-02"), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

// peakByDayLoop é o cálculo dia-a-dia do sistema original, usado como oráculo
// para o sweep-line
func peakByDayLoop(reservations []*domain.Reservation, start, end time.Time, policy Policy) int {
	peak := 0
	for day := domain.DateOnly(start); !day.After(domain.DateOnly(end)); day = day.AddDate(0, 0, 1) {
		demand := 0
		for _, r := range reservations {
			if policy.Blocks(r.Status) && r.CoversDay(day) {
				demand += r.Quantity
			}
		}
		if demand > peak {
			peak = demand
		}
	}
	return peak
}

func TestPeakConcurrentDemand_MatchesDayLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := []domain.ReservationStatus{
		domain.StatusPendente,
		domain.StatusConfirmada,
		domain.StatusCancelada,
		domain.StatusConcluida,
	}
	base := date("2026-06-01")

	for i := 0; i < 200; i++ {
		var reservations []*domain.Reservation
		for n := rng.Intn(12); n > 0; n-- {
			startOffset := rng.Intn(40)
			r := &domain.Reservation{
				EquipmentID: 1,
				StartDate:   base.AddDate(0, 0, startOffset),
				EndDate:     base.AddDate(0, 0, startOffset+rng.Intn(10)),
				Quantity:    1 + rng.Intn(4),
				Status:      statuses[rng.Intn(len(statuses))],
			}
			reservations = append(reservations, r)
		}

		windowStart := base.AddDate(0, 0, rng.Intn(30))
		windowEnd := windowStart.AddDate(0, 0, rng.Intn(15))
		policy := Policy{CompletedBlocks: rng.Intn(2) == 0}

		want := peakByDayLoop(reservations, windowStart, windowEnd, policy)
		got := peakConcurrentDemand(reservations, windowStart, windowEnd, policy)

		require.Equal(t, want, got,
			"case %d: window %s..%s", i,
			windowStart.Format(domain.DateFormat), windowEnd.Format(domain.DateFormat))
	}
}
