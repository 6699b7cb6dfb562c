package locadoras

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hublumi/booking-service/internal/domain"
	locadoraRepo "github.com/hublumi/booking-service/internal/infra/storage/locadora"
	"github.com/hublumi/booking-service/internal/service/locadoras/models"
	"github.com/hublumi/booking-service/pkg/ptr"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	locadoras map[int64]*domain.Locadora
	createErr error
	updateErr error
}

func (f *fakeRepo) Create(_ context.Context, l *domain.Locadora) (*domain.Locadora, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *l
	created.ID = 7
	f.locadoras[created.ID] = &created
	return &created, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Locadora, error) {
	l, ok := f.locadoras[id]
	if !ok {
		return nil, locadoraRepo.ErrLocadoraNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.Locadora, error) {
	out := make([]*domain.Locadora, 0, len(f.locadoras))
	for _, l := range f.locadoras {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, l *domain.Locadora) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.locadoras[l.ID]; !ok {
		return locadoraRepo.ErrLocadoraNotFound
	}
	f.locadoras[l.ID] = l
	return nil
}

func testLocadora() *domain.Locadora {
	return &domain.Locadora{
		ID:          7,
		RazaoSocial: "Luz e Cena Locações LTDA",
		CNPJ:        "12.345.678/0001-90",
		Email:       "contato@luzecena.com.br",
		Status:      domain.LocadoraAtiva,
	}
}

func newTestService(l *domain.Locadora) (*Service, *fakeRepo) {
	repo := &fakeRepo{locadoras: map[int64]*domain.Locadora{}}
	if l != nil {
		repo.locadoras[l.ID] = l
	}
	return NewService(repo, stubLogger{}), repo
}

func validCreateRequest() *models.CreateLocadoraRequest {
	return &models.CreateLocadoraRequest{
		RazaoSocial: "Luz e Cena Locações LTDA",
		CNPJ:        "12.345.678/0001-90",
		Email:       "Contato@LuzECena.com.br",
		City:        "São Paulo",
		State:       "SP",
	}
}

func TestService_Create(t *testing.T) {
	svc, repo := newTestService(nil)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, string(domain.LocadoraAtiva), resp.Status)
	// Email normalizado para minúsculas
	assert.Equal(t, "contato@luzecena.com.br", repo.locadoras[7].Email)
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService(nil)
	repo.createErr = locadoraRepo.ErrDuplicateEmail

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestService_Create_DuplicateCNPJ(t *testing.T) {
	svc, repo := newTestService(nil)
	repo.createErr = locadoraRepo.ErrDuplicateCNPJ

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrDuplicateCNPJ)
}

func TestService_Create_InvalidInput(t *testing.T) {
	svc, _ := newTestService(nil)

	tests := []struct {
		name   string
		mutate func(*models.CreateLocadoraRequest)
	}{
		{"empty razao social", func(r *models.CreateLocadoraRequest) { r.RazaoSocial = "  " }},
		{"empty cnpj", func(r *models.CreateLocadoraRequest) { r.CNPJ = "" }},
		{"empty email", func(r *models.CreateLocadoraRequest) { r.Email = "" }},
		{"invalid email", func(r *models.CreateLocadoraRequest) { r.Email = "sem-arroba" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newTestService(testLocadora())

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Luz e Cena Locações LTDA", resp.RazaoSocial)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrLocadoraNotFound)
}

func TestService_List(t *testing.T) {
	svc, _ := newTestService(testLocadora())

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Locadoras, 1)
}

func TestService_Update_PartialFields(t *testing.T) {
	svc, repo := newTestService(testLocadora())

	resp, err := svc.Update(context.Background(), 7, &models.UpdateLocadoraRequest{
		RequesterID: 7,
		Telefone:    ptr.Ptr("+55 11 91234-5678"),
	})
	require.NoError(t, err)

	// Somente o telefone muda, o resto permanece
	assert.Equal(t, "+55 11 91234-5678", resp.Telefone)
	assert.Equal(t, "Luz e Cena Locações LTDA", resp.RazaoSocial)
	assert.Equal(t, "12.345.678/0001-90", repo.locadoras[7].CNPJ)
}

func TestService_Update_Status(t *testing.T) {
	svc, _ := newTestService(testLocadora())

	resp, err := svc.Update(context.Background(), 7, &models.UpdateLocadoraRequest{
		RequesterID: 7,
		Status:      ptr.Ptr("inativo"),
	})
	require.NoError(t, err)
	assert.Equal(t, "inativo", resp.Status)

	_, err = svc.Update(context.Background(), 7, &models.UpdateLocadoraRequest{
		RequesterID: 7,
		Status:      ptr.Ptr("suspenso"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_AccessDenied(t *testing.T) {
	svc, _ := newTestService(testLocadora())

	_, err := svc.Update(context.Background(), 7, &models.UpdateLocadoraRequest{
		RequesterID: 99,
		Telefone:    ptr.Ptr("11 0000-0000"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Update_InvalidEmail(t *testing.T) {
	svc, _ := newTestService(testLocadora())

	_, err := svc.Update(context.Background(), 7, &models.UpdateLocadoraRequest{
		RequesterID: 7,
		Email:       ptr.Ptr("sem-arroba"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
