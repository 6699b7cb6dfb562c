package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/hublumi/booking-service/internal/domain"
	reservationRepo "github.com/hublumi/booking-service/internal/infra/storage/reservation"
	"github.com/hublumi/booking-service/internal/service/reservations/models"
)

// Service serviço de consulta e gestão de reservas existentes.
// A criação de reserva tem usecase próprio (create_reservation), por causa
// da transação serializável com recheck de disponibilidade.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService cria o serviço de reservas
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID busca uma reserva por ID.
// Acesso restrito ao cliente que fez a reserva ou à locadora dona do
// equipamento.
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for requester=%d", id, requesterID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !canAccess(reservation, requesterID) {
		s.logger.Warn("GetByID: access denied for requester=%d to reservation id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetClientReservations lista o histórico de reservas de um cliente
// Opcionalmente filtra por status
func (s *Service) GetClientReservations(ctx context.Context, req *models.GetClientReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetClientReservations: fetching reservations for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientReservations: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.ListByClient(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientReservations: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientReservations: successfully fetched %d reservations for client=%d", len(reservations), req.ClientID)
	return models.FromDomainReservationList(reservations), nil
}

// GetLocadoraReservations lista reservas de uma locadora com filtros
// (equipamento, período, status, inclusão de canceladas).
// Apenas a própria locadora enxerga a listagem.
func (s *Service) GetLocadoraReservations(ctx context.Context, req *models.GetLocadoraReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetLocadoraReservations: fetching reservations for locadora=%d, requester=%d", req.LocadoraID, req.RequesterID)

	if req.RequesterID != req.LocadoraID {
		s.logger.Warn("GetLocadoraReservations: access denied for requester=%d to locadora=%d", req.RequesterID, req.LocadoraID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetLocadoraReservations: invalid filter for locadora=%d: %v", req.LocadoraID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListByLocadoraWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetLocadoraReservations: repository error for locadora=%d: %v", req.LocadoraID, err)
		return nil, fmt.Errorf("%w: GetLocadoraReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLocadoraReservations: successfully fetched %d reservations for locadora=%d", len(reservations), req.LocadoraID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel cancela uma reserva registrando o motivo.
// Cliente cancela a própria reserva; a locadora cancela reservas dos seus
// equipamentos. Reservas concluídas ou já canceladas não podem ser canceladas.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by requester=%d", reservationID, req.RequesterID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !canAccess(reservation, req.RequesterID) {
		s.logger.Warn("Cancel: access denied for requester=%d to reservation id=%d", req.RequesterID, reservationID)
		return ErrAccessDenied
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// UpdateStatus transiciona o status de uma reserva
// (pendente -> confirmada, confirmada -> concluida).
// Apenas a locadora dona do equipamento pode transicionar.
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by requester=%d",
		reservationID, req.Status, req.RequesterID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if reservation.LocadoraID != req.RequesterID {
		s.logger.Warn("UpdateStatus: access denied for requester=%d to reservation id=%d", req.RequesterID, reservationID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !reservation.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for reservation id=%d",
			reservation.Status, newStatus, reservationID)
		return ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found during update", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}

// canAccess verifica se o solicitante é o cliente da reserva ou a locadora
// dona do equipamento reservado
func canAccess(reservation *domain.Reservation, requesterID int64) bool {
	return reservation.ClientID == requesterID || reservation.LocadoraID == requesterID
}
