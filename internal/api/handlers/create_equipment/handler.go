package create_equipment

import (
	"errors"
	"net/http"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/api/middleware"
	"github.com/hublumi/booking-service/internal/service/equipments"
	"github.com/hublumi/booking-service/internal/service/equipments/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgForbidden          = "acesso negado"
	msgLocadoraNotFound   = "locadora não encontrada"
	msgLocadoraInactive   = "locadora inativa"
	msgInvalidInput       = "dados do equipamento inválidos"
)

type Handler struct {
	service EquipmentService
	logger  Logger
}

func NewHandler(service EquipmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/equipments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /equipments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /equipments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RequesterID = requesterID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, equipments.ErrAccessDenied):
			h.logger.Warn("POST /equipments - Access denied: requester_id=%d, locadora_id=%d",
				requesterID, req.LocadoraID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, equipments.ErrLocadoraNotFound):
			h.logger.Warn("POST /equipments - Locadora not found: locadora_id=%d", req.LocadoraID)
			handlers.RespondNotFound(w, msgLocadoraNotFound)

		case errors.Is(err, equipments.ErrLocadoraInactive):
			h.logger.Warn("POST /equipments - Locadora inactive: locadora_id=%d", req.LocadoraID)
			handlers.RespondError(w, http.StatusConflict, msgLocadoraInactive)

		case errors.Is(err, equipments.ErrInvalidInput):
			h.logger.Warn("POST /equipments - Invalid input: locadora_id=%d, error=%v", req.LocadoraID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /equipments - Failed to create equipment: locadora_id=%d, error=%v",
				req.LocadoraID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /equipments - Equipment created successfully: equipment_id=%d, locadora_id=%d",
		result.ID, req.LocadoraID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
