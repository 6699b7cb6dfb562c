package get_locadora

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/service/locadoras"
)

const (
	msgInvalidLocadoraID = "ID de locadora inválido"
	msgNotFound          = "locadora não encontrada"
)

type Handler struct {
	service LocadoraService
	logger  Logger
}

func NewHandler(service LocadoraService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locadoras/{locadoraId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locadoraID, err := strconv.ParseInt(vars["locadoraId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locadoras/{id} - Invalid locadora ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocadoraID)
		return
	}

	locadora, err := h.service.GetByID(r.Context(), locadoraID)
	if err != nil {
		switch {
		case errors.Is(err, locadoras.ErrLocadoraNotFound):
			h.logger.Warn("GET /locadoras/{id} - Locadora not found: locadora_id=%d", locadoraID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /locadoras/{id} - Failed to get locadora: locadora_id=%d, error=%v",
				locadoraID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locadoras/{id} - Locadora retrieved successfully: locadora_id=%d", locadoraID)
	handlers.RespondJSON(w, http.StatusOK, locadora)
}
