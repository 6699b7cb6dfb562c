package list_locadoras

import (
	"net/http"

	"github.com/hublumi/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/locadoras
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /locadoras - Failed to list locadoras: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locadoras - Retrieved %d locadoras", len(result.Locadoras))
	handlers.RespondJSON(w, http.StatusOK, result)
}
