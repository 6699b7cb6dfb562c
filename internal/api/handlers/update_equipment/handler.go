package update_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/api/middleware"
	"github.com/hublumi/booking-service/internal/service/equipments"
	"github.com/hublumi/booking-service/internal/service/equipments/models"
)

const (
	msgInvalidEquipmentID = "ID de equipamento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgForbidden          = "acesso negado"
	msgNotFound           = "equipamento não encontrado"
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

// Handle PUT /api/v1/equipments/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	equipmentID, err := strconv.ParseInt(vars["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /equipments/{id} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /equipments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /equipments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RequesterID = requesterID

	result, err := h.service.Update(r.Context(), equipmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, equipments.ErrEquipmentNotFound):
			h.logger.Warn("PUT /equipments/{id} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, equipments.ErrAccessDenied):
			h.logger.Warn("PUT /equipments/{id} - Access denied: equipment_id=%d, requester_id=%d",
				equipmentID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, equipments.ErrInvalidInput):
			h.logger.Warn("PUT /equipments/{id} - Invalid input: equipment_id=%d, error=%v", equipmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /equipments/{id} - Failed to update equipment: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /equipments/{id} - Equipment updated successfully: equipment_id=%d", equipmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
