package create_reservation

import (
	"errors"
	"net/http"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/api/middleware"
	createReservation "github.com/hublumi/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingUserID      = "ID do usuário ausente"
	msgEquipmentNotFound  = "equipamento não encontrado"
	msgEquipmentNotListed = "equipamento indisponível para locação"
	msgLocadoraInactive   = "locadora inativa"
	msgNotEnoughUnits     = "não há unidades disponíveis para o período solicitado"
	msgInvalidReservDate  = "data de início no passado"
	msgInvalidRange       = "data final anterior à data inicial"
	msgRangeTooLong       = "período de locação excede o máximo permitido"
	msgInvalidInput       = "dados da reserva inválidos"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrNotEnoughUnits):
			h.logger.Warn("POST /reservations - Not enough units: client_id=%d, equipment_id=%d",
				clientID, req.EquipmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughUnits)

		case errors.Is(err, createReservation.ErrEquipmentNotFound):
			h.logger.Warn("POST /reservations - Equipment not found: equipment_id=%d", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createReservation.ErrEquipmentNotListed):
			h.logger.Warn("POST /reservations - Equipment not listed: equipment_id=%d", req.EquipmentID)
			handlers.RespondError(w, http.StatusConflict, msgEquipmentNotListed)

		case errors.Is(err, createReservation.ErrLocadoraInactive):
			h.logger.Warn("POST /reservations - Locadora inactive: equipment_id=%d", req.EquipmentID)
			handlers.RespondError(w, http.StatusConflict, msgLocadoraInactive)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Start date in the past: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidReservDate)

		case errors.Is(err, createReservation.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid range: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createReservation.ErrRangeTooLong):
			h.logger.Warn("POST /reservations - Range too long: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: client_id=%d, equipment_id=%d, error=%v",
				clientID, req.EquipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, client_id=%d, equipment_id=%d",
		result.ID, clientID, req.EquipmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
