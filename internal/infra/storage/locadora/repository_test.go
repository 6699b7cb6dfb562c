package locadora

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hublumi/booking-service/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func locadoraRows(l *domain.Locadora) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "razao_social", "cnpj", "inscricao_estadual", "contribuinte",
		"email", "telefone", "endereco", "cidade", "estado", "status",
		"created_at", "updated_at",
	}).AddRow(
		l.ID, l.RazaoSocial, l.CNPJ, l.InscricaoEstadual, l.Contribuinte,
		l.Email, l.Telefone, l.Endereco, l.City, l.State, l.Status,
		time.Now(), time.Now(),
	)
}

func testLocadora() *domain.Locadora {
	return &domain.Locadora{
		ID:                7,
		RazaoSocial:       "Luz e Cena Locações LTDA",
		CNPJ:              "12.345.678/0001-90",
		InscricaoEstadual: "110.042.490.114",
		Contribuinte:      "sim",
		Email:             "contato@luzecena.com.br",
		Telefone:          "+55 11 98765-4321",
		Endereco:          "Rua Augusta, 1200",
		City:              "São Paulo",
		State:             "SP",
		Status:            domain.LocadoraAtiva,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	l := testLocadora()
	l.ID = 0

	mock.ExpectQuery("INSERT INTO locadoras").
		WithArgs(l.RazaoSocial, l.CNPJ, l.InscricaoEstadual, l.Contribuinte,
			l.Email, l.Telefone, l.Endereco, l.City, l.State, l.Status).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(7, time.Now(), time.Now()))

	created, err := repo.Create(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO locadoras").
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: "locadoras_email_key"})

	_, err := repo.Create(context.Background(), testLocadora())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRepository_Create_DuplicateCNPJ(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO locadoras").
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: "locadoras_cnpj_key"})

	_, err := repo.Create(context.Background(), testLocadora())
	assert.ErrorIs(t, err, ErrDuplicateCNPJ)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM locadoras WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(locadoraRows(testLocadora()))

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Luz e Cena Locações LTDA", got.RazaoSocial)
	assert.Equal(t, domain.LocadoraAtiva, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM locadoras WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrLocadoraNotFound)
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM locadoras WHERE email = \\$1").
		WithArgs("contato@luzecena.com.br").
		WillReturnRows(locadoraRows(testLocadora()))

	got, err := repo.GetByEmail(context.Background(), "contato@luzecena.com.br")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM locadoras ORDER BY razao_social ASC").
		WillReturnRows(locadoraRows(testLocadora()))

	locadoras, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, locadoras, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE locadoras SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), testLocadora())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE locadoras SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), testLocadora())
	assert.ErrorIs(t, err, ErrLocadoraNotFound)
}

func TestRepository_Update_DuplicateEmail(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE locadoras SET").
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: "locadoras_email_key"})

	err := repo.Update(context.Background(), testLocadora())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
