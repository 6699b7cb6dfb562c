package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/hublumi/booking-service/internal/domain"
	equipmentRepo "github.com/hublumi/booking-service/internal/infra/storage/equipment"
	locadoraRepo "github.com/hublumi/booking-service/internal/infra/storage/locadora"
)

// UseCase use case de criação de reserva
type UseCase struct {
	reservationRepo ReservationRepository
	equipmentRepo   EquipmentRepository
	locadoraRepo    LocadoraRepository
	engine          AvailabilityEngine
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase cria o use case de criação de reserva
func NewUseCase(
	reservationRepo ReservationRepository,
	equipmentRepo EquipmentRepository,
	locadoraRepo LocadoraRepository,
	engine AvailabilityEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		equipmentRepo:   equipmentRepo,
		locadoraRepo:    locadoraRepo,
		engine:          engine,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute executa a criação da reserva.
// O recheck de disponibilidade e o insert rodam numa transação serializável:
// duas reservas concorrentes disputando as últimas unidades não passam as duas.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%d, equipment=%d, period=%s..%s, quantity=%d",
		req.ClientID, req.EquipmentID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.Quantity)

	// 1. Validação dos dados de entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Validação do período contra a data atual
	now := uc.timeProvider.Now()
	if err := validateDates(req.StartDate, req.EndDate, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	startDay := domain.DateOnly(req.StartDate)
	endDay := domain.DateOnly(req.EndDate)

	// 3. Busca o equipamento e confere se está listado no catálogo
	equipment, err := uc.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			uc.logger.Warn("CreateReservation: equipment id=%d not found", req.EquipmentID)
			return nil, ErrEquipmentNotFound
		}
		uc.logger.Error("CreateReservation: failed to get equipment id=%d: %v", req.EquipmentID, err)
		return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
	}

	if !equipment.IsListed() {
		uc.logger.Warn("CreateReservation: equipment id=%d is not listed", req.EquipmentID)
		return nil, ErrEquipmentNotListed
	}

	// 4. Confere se a locadora dona está ativa
	locadora, err := uc.locadoraRepo.GetByID(ctx, equipment.LocadoraID)
	if err != nil {
		if errors.Is(err, locadoraRepo.ErrLocadoraNotFound) {
			uc.logger.Warn("CreateReservation: locadora id=%d not found for equipment id=%d",
				equipment.LocadoraID, req.EquipmentID)
			return nil, ErrLocadoraInactive
		}
		uc.logger.Error("CreateReservation: failed to get locadora id=%d: %v", equipment.LocadoraID, err)
		return nil, fmt.Errorf("%w: failed to get locadora: %v", ErrInternal, err)
	}

	if !locadora.IsActive() {
		uc.logger.Warn("CreateReservation: locadora id=%d is inactive", equipment.LocadoraID)
		return nil, ErrLocadoraInactive
	}

	var result *domain.Reservation

	// 5. Recheck de disponibilidade + insert na transação serializável
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Dentro da transação o ListByEquipment do motor roda com
		// FOR UPDATE, travando as reservas concorrentes do equipamento
		ok, availResult, err := uc.engine.CanSatisfy(txCtx, req.EquipmentID, startDay, endDay, req.Quantity)
		if err != nil {
			uc.logger.Error("CreateReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if !ok {
			uc.logger.Warn("CreateReservation: not enough units for equipment id=%d: available=%d, requested=%d",
				req.EquipmentID, availResult.Available, req.Quantity)
			return fmt.Errorf("%w: available=%d, requested=%d",
				ErrNotEnoughUnits, availResult.Available, req.Quantity)
		}

		uc.logger.Info("CreateReservation: availability ok for equipment id=%d: available=%d, requested=%d",
			req.EquipmentID, availResult.Available, req.Quantity)

		// 5.2. Preço total: diária x diárias inclusivas x quantidade
		days := domain.InclusiveDays(startDay, endDay)
		totalPrice := equipment.DailyRate * float64(days) * float64(req.Quantity)

		reservation := &domain.Reservation{
			EquipmentID: req.EquipmentID,
			LocadoraID:  equipment.LocadoraID,
			ClientID:    req.ClientID,
			StartDate:   startDay,
			EndDate:     endDay,
			Quantity:    req.Quantity,
			Status:      domain.StatusPendente,
			TotalPrice:  totalPrice,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, totalPrice=%.2f",
		result.ID, result.TotalPrice)

	return &Response{
		ID:          result.ID,
		EquipmentID: result.EquipmentID,
		LocadoraID:  result.LocadoraID,
		ClientID:    result.ClientID,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		Quantity:    result.Quantity,
		Status:      string(result.Status),
		TotalPrice:  result.TotalPrice,
		ClientName:  result.ClientName,
		ClientEmail: result.ClientEmail,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
