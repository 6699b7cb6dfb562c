package get_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/service/equipments"
)

const (
	msgInvalidEquipmentID = "ID de equipamento inválido"
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

// Handle GET /api/v1/equipments/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	equipmentID, err := strconv.ParseInt(vars["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /equipments/{id} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	equipment, err := h.service.GetByID(r.Context(), equipmentID)
	if err != nil {
		switch {
		case errors.Is(err, equipments.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipments/{id} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /equipments/{id} - Failed to get equipment: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipments/{id} - Equipment retrieved successfully: equipment_id=%d", equipmentID)
	handlers.RespondJSON(w, http.StatusOK, equipment)
}
