package equipments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hublumi/booking-service/internal/domain"
	equipmentRepo "github.com/hublumi/booking-service/internal/infra/storage/equipment"
	locadoraRepo "github.com/hublumi/booking-service/internal/infra/storage/locadora"
	"github.com/hublumi/booking-service/internal/service/equipments/models"
)

// Service serviço de catálogo e gestão de equipamentos
type Service struct {
	equipmentRepo EquipmentRepository
	locadoraRepo  LocadoraRepository
	logger        Logger
}

// NewService cria o serviço de equipamentos
func NewService(equipmentRepo EquipmentRepository, locadoraRepo LocadoraRepository, logger Logger) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		locadoraRepo:  locadoraRepo,
		logger:        logger,
	}
}

// List lista o catálogo com filtros opcionais
func (s *Service) List(ctx context.Context, req *models.ListEquipmentsRequest) (*models.EquipmentListResponse, error) {
	s.logger.Info("List: fetching equipments, filter=%+v", req)

	equipments, err := s.equipmentRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d equipments", len(equipments))
	return models.FromDomainEquipmentList(equipments), nil
}

// GetByID busca um equipamento por ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EquipmentResponse, error) {
	s.logger.Info("GetByID: fetching equipment id=%d", id)

	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("GetByID: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("GetByID: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEquipment(equipment), nil
}

// Create cadastra um equipamento para a locadora.
// Apenas a própria locadora cadastra no seu estoque, e a conta precisa
// estar ativa.
func (s *Service) Create(ctx context.Context, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("Create: creating equipment for locadora=%d by requester=%d", req.LocadoraID, req.RequesterID)

	if req.RequesterID != req.LocadoraID {
		s.logger.Warn("Create: access denied for requester=%d to locadora=%d", req.RequesterID, req.LocadoraID)
		return nil, ErrAccessDenied
	}

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	locadora, err := s.locadoraRepo.GetByID(ctx, req.LocadoraID)
	if err != nil {
		if errors.Is(err, locadoraRepo.ErrLocadoraNotFound) {
			s.logger.Warn("Create: locadora id=%d not found", req.LocadoraID)
			return nil, ErrLocadoraNotFound
		}
		s.logger.Error("Create: failed to get locadora id=%d: %v", req.LocadoraID, err)
		return nil, fmt.Errorf("%w: Create - failed to get locadora: %v", ErrInternal, err)
	}

	if !locadora.IsActive() {
		s.logger.Warn("Create: locadora id=%d is inactive", req.LocadoraID)
		return nil, ErrLocadoraInactive
	}

	equipment := &domain.Equipment{
		LocadoraID:    req.LocadoraID,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Category:      req.Category,
		DailyRate:     req.DailyRate,
		TotalQuantity: req.TotalQuantity,
		ListingStatus: domain.ListingDisponivel,
		City:          req.City,
		State:         req.State,
		ShortAddress:  req.ShortAddress,
		PhotoMain:     req.PhotoMain,
		PhotoExtra1:   req.PhotoExtra1,
		PhotoExtra2:   req.PhotoExtra2,
	}

	created, err := s.equipmentRepo.Create(ctx, equipment)
	if err != nil {
		s.logger.Error("Create: repository error for locadora=%d: %v", req.LocadoraID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created equipment id=%d for locadora=%d", created.ID, req.LocadoraID)
	return models.FromDomainEquipment(created), nil
}

// Update atualiza um equipamento. Campos nil no request não são alterados.
// Apenas a locadora dona pode atualizar.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("Update: updating equipment id=%d by requester=%d", id, req.RequesterID)

	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("Update: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("Update: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if equipment.LocadoraID != req.RequesterID {
		s.logger.Warn("Update: access denied for requester=%d to equipment id=%d", req.RequesterID, id)
		return nil, ErrAccessDenied
	}

	if err := applyUpdates(equipment, req); err != nil {
		s.logger.Warn("Update: validation failed for equipment id=%d: %v", id, err)
		return nil, err
	}

	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("Update: equipment id=%d not found during update", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("Update: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated equipment id=%d", id)
	return models.FromDomainEquipment(equipment), nil
}

// Delete remove um equipamento do catálogo.
// Apenas a locadora dona pode remover.
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64) error {
	s.logger.Info("Delete: deleting equipment id=%d by requester=%d", id, requesterID)

	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("Delete: equipment id=%d not found", id)
			return ErrEquipmentNotFound
		}
		s.logger.Error("Delete: repository error for equipment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if equipment.LocadoraID != requesterID {
		s.logger.Warn("Delete: access denied for requester=%d to equipment id=%d", requesterID, id)
		return ErrAccessDenied
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			return ErrEquipmentNotFound
		}
		s.logger.Error("Delete: repository error for equipment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted equipment id=%d", id)
	return nil
}

// validateCreateRequest valida o cadastro de equipamento
func validateCreateRequest(req *models.CreateEquipmentRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title too long", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description too long", ErrInvalidInput)
	}
	if req.DailyRate < 0 {
		return fmt.Errorf("%w: dailyRate must be non-negative", ErrInvalidInput)
	}
	if req.TotalQuantity < 0 {
		return fmt.Errorf("%w: totalQuantity must be non-negative", ErrInvalidInput)
	}
	return nil
}

// applyUpdates aplica a atualização parcial sobre o modelo carregado
func applyUpdates(equipment *domain.Equipment, req *models.UpdateEquipmentRequest) error {
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		if len(*req.Title) > domain.MaxTitleLength {
			return fmt.Errorf("%w: title too long", ErrInvalidInput)
		}
		equipment.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if len(*req.Description) > domain.MaxDescriptionLength {
			return fmt.Errorf("%w: description too long", ErrInvalidInput)
		}
		equipment.Description = *req.Description
	}
	if req.Category != nil {
		equipment.Category = *req.Category
	}
	if req.DailyRate != nil {
		if *req.DailyRate < 0 {
			return fmt.Errorf("%w: dailyRate must be non-negative", ErrInvalidInput)
		}
		equipment.DailyRate = *req.DailyRate
	}
	if req.TotalQuantity != nil {
		if *req.TotalQuantity < 0 {
			return fmt.Errorf("%w: totalQuantity must be non-negative", ErrInvalidInput)
		}
		equipment.TotalQuantity = *req.TotalQuantity
	}
	if req.ListingStatus != nil {
		switch domain.ListingStatus(*req.ListingStatus) {
		case domain.ListingDisponivel, domain.ListingIndisponivel:
			equipment.ListingStatus = domain.ListingStatus(*req.ListingStatus)
		default:
			return fmt.Errorf("%w: invalid listingStatus %q", ErrInvalidInput, *req.ListingStatus)
		}
	}
	if req.City != nil {
		equipment.City = *req.City
	}
	if req.State != nil {
		equipment.State = *req.State
	}
	if req.ShortAddress != nil {
		equipment.ShortAddress = *req.ShortAddress
	}
	if req.PhotoMain != nil {
		equipment.PhotoMain = req.PhotoMain
	}
	if req.PhotoExtra1 != nil {
		equipment.PhotoExtra1 = req.PhotoExtra1
	}
	if req.PhotoExtra2 != nil {
		equipment.PhotoExtra2 = req.PhotoExtra2
	}
	return nil
}
