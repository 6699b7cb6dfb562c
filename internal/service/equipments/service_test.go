package equipments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hublumi/booking-service/internal/domain"
	equipmentRepo "github.com/hublumi/booking-service/internal/infra/storage/equipment"
	locadoraRepo "github.com/hublumi/booking-service/internal/infra/storage/locadora"
	"github.com/hublumi/booking-service/internal/service/equipments/models"
	"github.com/hublumi/booking-service/pkg/ptr"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fakeEquipmentRepo struct {
	equipments map[int64]*domain.Equipment
	lastFilter domain.EquipmentFilter
	deletedID  int64
}

func (f *fakeEquipmentRepo) Create(_ context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	created := *e
	created.ID = 55
	f.equipments[created.ID] = &created
	return &created, nil
}

func (f *fakeEquipmentRepo) GetByID(_ context.Context, id int64) (*domain.Equipment, error) {
	e, ok := f.equipments[id]
	if !ok {
		return nil, equipmentRepo.ErrEquipmentNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEquipmentRepo) List(_ context.Context, filter domain.EquipmentFilter) ([]*domain.Equipment, error) {
	f.lastFilter = filter
	out := make([]*domain.Equipment, 0, len(f.equipments))
	for _, e := range f.equipments {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEquipmentRepo) Update(_ context.Context, e *domain.Equipment) error {
	if _, ok := f.equipments[e.ID]; !ok {
		return equipmentRepo.ErrEquipmentNotFound
	}
	f.equipments[e.ID] = e
	return nil
}

func (f *fakeEquipmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.equipments[id]; !ok {
		return equipmentRepo.ErrEquipmentNotFound
	}
	delete(f.equipments, id)
	f.deletedID = id
	return nil
}

type fakeLocadoraRepo struct {
	locadora *domain.Locadora
}

func (f *fakeLocadoraRepo) GetByID(_ context.Context, id int64) (*domain.Locadora, error) {
	if f.locadora == nil || f.locadora.ID != id {
		return nil, locadoraRepo.ErrLocadoraNotFound
	}
	return f.locadora, nil
}

func testEquipment() *domain.Equipment {
	return &domain.Equipment{
		ID:            10,
		LocadoraID:    7,
		Title:         "Mesa de som 16 canais",
		Category:      "audio",
		DailyRate:     200.0,
		TotalQuantity: 2,
		ListingStatus: domain.ListingDisponivel,
	}
}

func newTestService(e *domain.Equipment, l *domain.Locadora) (*Service, *fakeEquipmentRepo) {
	repo := &fakeEquipmentRepo{equipments: map[int64]*domain.Equipment{}}
	if e != nil {
		repo.equipments[e.ID] = e
	}
	return NewService(repo, &fakeLocadoraRepo{locadora: l}, stubLogger{}), repo
}

func activeLocadora() *domain.Locadora {
	return &domain.Locadora{ID: 7, Status: domain.LocadoraAtiva}
}

func validCreateRequest() *models.CreateEquipmentRequest {
	return &models.CreateEquipmentRequest{
		RequesterID:   7,
		LocadoraID:    7,
		Title:         "Mesa de som 16 canais",
		Category:      "audio",
		DailyRate:     200.0,
		TotalQuantity: 2,
		City:          "São Paulo",
		State:         "SP",
	}
}

func TestService_Create(t *testing.T) {
	svc, repo := newTestService(nil, activeLocadora())

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.ID)
	assert.Equal(t, string(domain.ListingDisponivel), resp.ListingStatus)
	assert.Contains(t, repo.equipments, int64(55))
}

func TestService_Create_AccessDenied(t *testing.T) {
	svc, _ := newTestService(nil, activeLocadora())

	req := validCreateRequest()
	req.RequesterID = 99

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Create_LocadoraInactive(t *testing.T) {
	svc, _ := newTestService(nil, &domain.Locadora{ID: 7, Status: domain.LocadoraInativa})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrLocadoraInactive)
}

func TestService_Create_LocadoraNotFound(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrLocadoraNotFound)
}

func TestService_Create_InvalidInput(t *testing.T) {
	svc, _ := newTestService(nil, activeLocadora())

	tests := []struct {
		name   string
		mutate func(*models.CreateEquipmentRequest)
	}{
		{"empty title", func(r *models.CreateEquipmentRequest) { r.Title = "   " }},
		{"title too long", func(r *models.CreateEquipmentRequest) { r.Title = strings.Repeat("a", domain.MaxTitleLength+1) }},
		{"negative rate", func(r *models.CreateEquipmentRequest) { r.DailyRate = -1 }},
		{"negative quantity", func(r *models.CreateEquipmentRequest) { r.TotalQuantity = -1 }},
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

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestService_List_PassesFilter(t *testing.T) {
	svc, repo := newTestService(testEquipment(), nil)

	resp, err := svc.List(context.Background(), &models.ListEquipmentsRequest{
		City:       ptr.Ptr("São Paulo"),
		OnlyListed: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Equipments, 1)
	assert.True(t, repo.lastFilter.OnlyListed)
	require.NotNil(t, repo.lastFilter.City)
	assert.Equal(t, "São Paulo", *repo.lastFilter.City)
}

func TestService_Update_PartialFields(t *testing.T) {
	svc, repo := newTestService(testEquipment(), nil)

	resp, err := svc.Update(context.Background(), 10, &models.UpdateEquipmentRequest{
		RequesterID: 7,
		DailyRate:   ptr.Ptr(250.0),
	})
	require.NoError(t, err)

	// Somente a diária muda, o resto permanece
	assert.Equal(t, 250.0, resp.DailyRate)
	assert.Equal(t, "Mesa de som 16 canais", resp.Title)
	assert.Equal(t, 250.0, repo.equipments[10].DailyRate)
}

func TestService_Update_ListingStatus(t *testing.T) {
	svc, _ := newTestService(testEquipment(), nil)

	resp, err := svc.Update(context.Background(), 10, &models.UpdateEquipmentRequest{
		RequesterID:   7,
		ListingStatus: ptr.Ptr("indisponivel"),
	})
	require.NoError(t, err)
	assert.Equal(t, "indisponivel", resp.ListingStatus)

	_, err = svc.Update(context.Background(), 10, &models.UpdateEquipmentRequest{
		RequesterID:   7,
		ListingStatus: ptr.Ptr("inexistente"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_AccessDenied(t *testing.T) {
	svc, _ := newTestService(testEquipment(), nil)

	_, err := svc.Update(context.Background(), 10, &models.UpdateEquipmentRequest{
		RequesterID: 99,
		DailyRate:   ptr.Ptr(1.0),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService(testEquipment(), nil)

	err := svc.Delete(context.Background(), 10, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(10), repo.deletedID)
}

func TestService_Delete_AccessDenied(t *testing.T) {
	svc, _ := newTestService(testEquipment(), nil)

	err := svc.Delete(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
