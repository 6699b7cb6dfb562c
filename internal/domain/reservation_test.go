package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day counts as one", "2026-10-01", "2026-10-01", 1},
		{"two days", "2026-10-01", "2026-10-02", 2},
		{"full week", "2026-10-01", "2026-10-07", 7},
		{"across month boundary", "2026-10-30", "2026-11-02", 4},
		{"end before start", "2026-10-05", "2026-10-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InclusiveDays(day(tt.start), day(tt.end)))
		})
	}
}

func TestDateOnly(t *testing.T) {
	instant := time.Date(2026, 10, 15, 18, 42, 3, 500, time.UTC)
	normalized := DateOnly(instant)

	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), normalized)
	// Idempotente
	assert.Equal(t, normalized, DateOnly(normalized))
}

func TestReservation_CoversDay(t *testing.T) {
	r := &Reservation{
		StartDate: day("2026-10-03"),
		EndDate:   day("2026-10-05"),
	}

	assert.False(t, r.CoversDay(day("2026-10-02")))
	assert.True(t, r.CoversDay(day("2026-10-03")), "first day is inclusive")
	assert.True(t, r.CoversDay(day("2026-10-04")))
	assert.True(t, r.CoversDay(day("2026-10-05")), "last day is inclusive")
	assert.False(t, r.CoversDay(day("2026-10-06")))
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPendente}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusConfirmada}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCancelada}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusConcluida}).CanBeCancelled())
}

func TestReservation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{StatusPendente, StatusConfirmada, true},
		{StatusConfirmada, StatusConcluida, true},
		{StatusPendente, StatusConcluida, false},
		{StatusConfirmada, StatusPendente, false},
		{StatusConcluida, StatusConfirmada, false},
		{StatusCancelada, StatusConfirmada, false},
		{StatusPendente, StatusCancelada, false}, // cancelamento tem fluxo próprio
	}

	for _, tt := range tests {
		r := &Reservation{Status: tt.from}
		assert.Equal(t, tt.want, r.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestReservation_RentalDays(t *testing.T) {
	r := &Reservation{
		StartDate: day("2026-10-01"),
		EndDate:   day("2026-10-04"),
	}
	assert.Equal(t, 4, r.RentalDays())
}

func TestEquipment_IsListed(t *testing.T) {
	assert.True(t, (&Equipment{ListingStatus: ListingDisponivel}).IsListed())
	assert.False(t, (&Equipment{ListingStatus: ListingIndisponivel}).IsListed())
}

func TestLocadora_IsActive(t *testing.T) {
	assert.True(t, (&Locadora{Status: LocadoraAtiva}).IsActive())
	assert.False(t, (&Locadora{Status: LocadoraInativa}).IsActive())
}
