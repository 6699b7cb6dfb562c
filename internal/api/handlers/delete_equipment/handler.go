package delete_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/api/middleware"
	"github.com/hublumi/booking-service/internal/service/equipments"
)

const (
	msgInvalidEquipmentID = "ID de equipamento inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgForbidden          = "acesso negado"
	msgNotFound           = "equipamento não encontrado"
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

// Handle DELETE /api/v1/equipments/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	equipmentID, err := strconv.ParseInt(vars["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /equipments/{id} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /equipments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), equipmentID, requesterID); err != nil {
		switch {
		case errors.Is(err, equipments.ErrEquipmentNotFound):
			h.logger.Warn("DELETE /equipments/{id} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, equipments.ErrAccessDenied):
			h.logger.Warn("DELETE /equipments/{id} - Access denied: equipment_id=%d, requester_id=%d",
				equipmentID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /equipments/{id} - Failed to delete equipment: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /equipments/{id} - Equipment deleted successfully: equipment_id=%d, requester_id=%d",
		equipmentID, requesterID)
	handlers.RespondNoContent(w)
}
