package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hublumi/booking-service/internal/domain"
	"github.com/hublumi/booking-service/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func reservationRows(r *domain.Reservation) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "equipamento_id", "locadora_id", "cliente_id", "nome_cliente",
		"email_cliente", "data_inicio", "data_fim", "quantidade", "status",
		"valor_total", "motivo_cancelamento", "cancelado_em", "created_at", "updated_at",
	}).AddRow(
		r.ID, r.EquipmentID, r.LocadoraID, r.ClientID, r.ClientName,
		r.ClientEmail, r.StartDate, r.EndDate, r.Quantity, r.Status,
		r.TotalPrice, nil, nil, time.Now(), time.Now(),
	)
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          1,
		EquipmentID: 10,
		LocadoraID:  7,
		ClientID:    3,
		ClientName:  "Ana Souza",
		ClientEmail: "ana@example.com",
		StartDate:   time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		Quantity:    2,
		Status:      domain.StatusPendente,
		TotalPrice:  600.0,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	r := testReservation()
	r.ID = 0

	mock.ExpectQuery("INSERT INTO reservas").
		WithArgs(r.EquipmentID, r.LocadoraID, r.ClientID, r.ClientName, r.ClientEmail,
			r.StartDate, r.EndDate, r.Quantity, r.Status, r.TotalPrice).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(1, time.Now(), time.Now()))

	created, err := repo.Create(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	r := testReservation()

	mock.ExpectQuery("SELECT (.+) FROM reservas WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(reservationRows(r))

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, domain.StatusPendente, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM reservas WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_ListByEquipment(t *testing.T) {
	repo, mock := newMock(t)
	r := testReservation()

	mock.ExpectQuery("SELECT (.+) FROM reservas WHERE equipamento_id = \\$1 ORDER BY data_inicio ASC").
		WithArgs(int64(10)).
		WillReturnRows(reservationRows(r))

	reservations, err := repo.ListByEquipment(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByEquipment_ForUpdateInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// Contexto com executor de transação força o FOR UPDATE
	ctx := dbmetrics.WithExecutor(context.Background(), db)

	mock.ExpectQuery("SELECT (.+) FROM reservas WHERE equipamento_id = \\$1 ORDER BY data_inicio ASC FOR UPDATE").
		WithArgs(int64(10)).
		WillReturnRows(reservationRows(testReservation()))

	_, err = repo.ListByEquipment(ctx, 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByLocadoraWithFilter_ExcludesCancelled(t *testing.T) {
	repo, mock := newMock(t)

	// Sem IncludeInactive o filtro exclui canceladas
	mock.ExpectQuery("SELECT (.+) FROM reservas WHERE locadora_id = \\$1 AND status NOT IN \\(\\$2\\)").
		WithArgs(int64(7), string(domain.StatusCancelada)).
		WillReturnRows(reservationRows(testReservation()))

	reservations, err := repo.ListByLocadoraWithFilter(context.Background(), domain.ReservationsFilter{
		LocadoraID: 7,
	})
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByLocadoraWithFilter_PeriodIntersection(t *testing.T) {
	repo, mock := newMock(t)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)

	// Reservas que intersectam a janela: data_inicio <= fim E data_fim >= início
	mock.ExpectQuery("SELECT (.+) FROM reservas WHERE locadora_id = \\$1 AND data_inicio <= \\$2 AND data_fim >= \\$3").
		WithArgs(int64(7), end, start).
		WillReturnRows(reservationRows(testReservation()))

	_, err := repo.ListByLocadoraWithFilter(context.Background(), domain.ReservationsFilter{
		LocadoraID:      7,
		StartDate:       &start,
		EndDate:         &end,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE reservas SET status = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2").
		WithArgs(domain.StatusConfirmada, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 1, domain.StatusConfirmada)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE reservas SET").
		WithArgs(domain.StatusConfirmada, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.StatusConfirmada)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE reservas SET status = \\$1, motivo_cancelamento = \\$2, cancelado_em = NOW\\(\\), updated_at = NOW\\(\\) WHERE id = \\$3").
		WithArgs(domain.StatusCancelada, "cliente desistiu", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 1, "cliente desistiu")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
