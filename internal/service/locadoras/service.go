package locadoras

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hublumi/booking-service/internal/domain"
	locadoraRepo "github.com/hublumi/booking-service/internal/infra/storage/locadora"
	"github.com/hublumi/booking-service/internal/service/locadoras/models"
)

// Service serviço cadastral de locadoras
type Service struct {
	locadoraRepo LocadoraRepository
	logger       Logger
}

// NewService cria o serviço de locadoras
func NewService(locadoraRepo LocadoraRepository, logger Logger) *Service {
	return &Service{
		locadoraRepo: locadoraRepo,
		logger:       logger,
	}
}

// List lista as locadoras cadastradas
func (s *Service) List(ctx context.Context) (*models.LocadoraListResponse, error) {
	s.logger.Info("List: fetching locadoras")

	locadoras, err := s.locadoraRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d locadoras", len(locadoras))
	return models.FromDomainLocadoraList(locadoras), nil
}

// GetByID busca uma locadora por ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.LocadoraResponse, error) {
	s.logger.Info("GetByID: fetching locadora id=%d", id)

	locadora, err := s.locadoraRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, locadoraRepo.ErrLocadoraNotFound) {
			s.logger.Warn("GetByID: locadora id=%d not found", id)
			return nil, ErrLocadoraNotFound
		}
		s.logger.Error("GetByID: repository error for locadora id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLocadora(locadora), nil
}

// Create cadastra uma locadora. E-mail e CNPJ são únicos na plataforma.
func (s *Service) Create(ctx context.Context, req *models.CreateLocadoraRequest) (*models.LocadoraResponse, error) {
	s.logger.Info("Create: creating locadora cnpj=%s", req.CNPJ)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	locadora := &domain.Locadora{
		RazaoSocial:       strings.TrimSpace(req.RazaoSocial),
		CNPJ:              strings.TrimSpace(req.CNPJ),
		InscricaoEstadual: req.InscricaoEstadual,
		Contribuinte:      req.Contribuinte,
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Telefone:          req.Telefone,
		Endereco:          req.Endereco,
		City:              req.City,
		State:             req.State,
		Status:            domain.LocadoraAtiva,
	}

	created, err := s.locadoraRepo.Create(ctx, locadora)
	if err != nil {
		switch {
		case errors.Is(err, locadoraRepo.ErrDuplicateEmail):
			s.logger.Warn("Create: email already registered: %s", locadora.Email)
			return nil, ErrDuplicateEmail
		case errors.Is(err, locadoraRepo.ErrDuplicateCNPJ):
			s.logger.Warn("Create: cnpj already registered: %s", locadora.CNPJ)
			return nil, ErrDuplicateCNPJ
		default:
			s.logger.Error("Create: repository error for cnpj=%s: %v", locadora.CNPJ, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Create: successfully created locadora id=%d", created.ID)
	return models.FromDomainLocadora(created), nil
}

// Update atualiza os dados cadastrais. Campos nil não são alterados.
// Apenas a própria locadora altera o seu cadastro.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateLocadoraRequest) (*models.LocadoraResponse, error) {
	s.logger.Info("Update: updating locadora id=%d by requester=%d", id, req.RequesterID)

	if req.RequesterID != id {
		s.logger.Warn("Update: access denied for requester=%d to locadora id=%d", req.RequesterID, id)
		return nil, ErrAccessDenied
	}

	locadora, err := s.locadoraRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, locadoraRepo.ErrLocadoraNotFound) {
			s.logger.Warn("Update: locadora id=%d not found", id)
			return nil, ErrLocadoraNotFound
		}
		s.logger.Error("Update: repository error for locadora id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := applyUpdates(locadora, req); err != nil {
		s.logger.Warn("Update: validation failed for locadora id=%d: %v", id, err)
		return nil, err
	}

	if err := s.locadoraRepo.Update(ctx, locadora); err != nil {
		switch {
		case errors.Is(err, locadoraRepo.ErrLocadoraNotFound):
			return nil, ErrLocadoraNotFound
		case errors.Is(err, locadoraRepo.ErrDuplicateEmail):
			s.logger.Warn("Update: email already registered: %s", locadora.Email)
			return nil, ErrDuplicateEmail
		default:
			s.logger.Error("Update: repository error for locadora id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated locadora id=%d", id)
	return models.FromDomainLocadora(locadora), nil
}

// validateCreateRequest valida o cadastro de locadora
func validateCreateRequest(req *models.CreateLocadoraRequest) error {
	if strings.TrimSpace(req.RazaoSocial) == "" {
		return fmt.Errorf("%w: razaoSocial is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CNPJ) == "" {
		return fmt.Errorf("%w: cnpj is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	return nil
}

// applyUpdates aplica a atualização parcial sobre o cadastro carregado
func applyUpdates(locadora *domain.Locadora, req *models.UpdateLocadoraRequest) error {
	if req.RazaoSocial != nil {
		if strings.TrimSpace(*req.RazaoSocial) == "" {
			return fmt.Errorf("%w: razaoSocial cannot be empty", ErrInvalidInput)
		}
		locadora.RazaoSocial = strings.TrimSpace(*req.RazaoSocial)
	}
	if req.InscricaoEstadual != nil {
		locadora.InscricaoEstadual = *req.InscricaoEstadual
	}
	if req.Contribuinte != nil {
		locadora.Contribuinte = *req.Contribuinte
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" || !strings.Contains(email, "@") {
			return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
		}
		locadora.Email = email
	}
	if req.Telefone != nil {
		locadora.Telefone = *req.Telefone
	}
	if req.Endereco != nil {
		locadora.Endereco = *req.Endereco
	}
	if req.City != nil {
		locadora.City = *req.City
	}
	if req.State != nil {
		locadora.State = *req.State
	}
	if req.Status != nil {
		switch domain.LocadoraStatus(*req.Status) {
		case domain.LocadoraAtiva, domain.LocadoraInativa:
			locadora.Status = domain.LocadoraStatus(*req.Status)
		default:
			return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
	}
	return nil
}
