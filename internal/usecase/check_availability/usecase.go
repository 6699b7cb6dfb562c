package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/hublumi/booking-service/internal/availability"
	"github.com/hublumi/booking-service/internal/domain"
)

// UseCase use case de consulta pública de disponibilidade
type UseCase struct {
	engine AvailabilityEngine
	logger Logger
}

// NewUseCase cria o use case de consulta de disponibilidade
func NewUseCase(engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		logger: logger,
	}
}

// Execute consulta quantas unidades do equipamento estão livres na janela.
// Consulta pura, sem lock: a garantia contra corrida fica na criação da
// reserva, que refaz a checagem dentro da transação.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: equipment=%d, period=%s..%s",
		req.EquipmentID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	result, err := uc.engine.Compute(ctx, req.EquipmentID, req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrEquipmentNotFound):
			uc.logger.Warn("CheckAvailability: equipment id=%d not found", req.EquipmentID)
			return nil, ErrEquipmentNotFound
		case errors.Is(err, availability.ErrInvalidRange):
			uc.logger.Warn("CheckAvailability: invalid range for equipment id=%d: %v", req.EquipmentID, err)
			return nil, ErrInvalidRange
		default:
			uc.logger.Error("CheckAvailability: engine error for equipment id=%d: %v", req.EquipmentID, err)
			return nil, fmt.Errorf("%w: engine error: %v", ErrInternal, err)
		}
	}

	resp := &Response{
		EquipmentID:   result.EquipmentID,
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
		TotalQuantity: result.TotalQuantity,
		PeakDemand:    result.PeakDemand,
		Available:     result.Available,
	}

	if req.Quantity != nil {
		ok := result.Available >= *req.Quantity
		resp.CanSatisfy = &ok
	}

	uc.logger.Info("CheckAvailability: equipment=%d, available=%d, peak=%d",
		req.EquipmentID, result.Available, result.PeakDemand)

	return resp, nil
}

// validateRequest valida os dados de entrada da consulta
func validateRequest(req *Request) error {
	if req.EquipmentID <= 0 {
		return fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if req.Quantity != nil && *req.Quantity < domain.MinReservationQuantity {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinReservationQuantity)
	}

	return nil
}
