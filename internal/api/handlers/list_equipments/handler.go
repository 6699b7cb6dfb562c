package list_equipments

import (
	"net/http"
	"strconv"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/service/equipments/models"
)

const (
	msgInvalidLocadoraID = "ID de locadora inválido"
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

// Handle GET /api/v1/equipments
// Filtros opcionais: locadoraId, city, state, category, onlyListed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Catálogo público mostra só equipamentos listados por padrão
	serviceReq := &models.ListEquipmentsRequest{
		OnlyListed: query.Get("onlyListed") != "false",
	}

	if raw := query.Get("locadoraId"); raw != "" {
		locadoraID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /equipments - Invalid locadora ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocadoraID)
			return
		}
		serviceReq.LocadoraID = &locadoraID
	}

	if city := query.Get("city"); city != "" {
		serviceReq.City = &city
	}

	if state := query.Get("state"); state != "" {
		serviceReq.State = &state
	}

	if category := query.Get("category"); category != "" {
		serviceReq.Category = &category
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /equipments - Failed to list equipments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /equipments - Retrieved %d equipments", len(result.Equipments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
