package update_locadora

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/api/middleware"
	"github.com/hublumi/booking-service/internal/service/locadoras"
	"github.com/hublumi/booking-service/internal/service/locadoras/models"
)

const (
	msgInvalidLocadoraID  = "ID de locadora inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserID      = "ID do usuário ausente"
	msgForbidden          = "acesso negado"
	msgNotFound           = "locadora não encontrada"
	msgDuplicateEmail     = "e-mail já cadastrado"
	msgInvalidInput       = "dados cadastrais inválidos"
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

// Handle PUT /api/v1/locadoras/{locadoraId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locadoraID, err := strconv.ParseInt(vars["locadoraId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /locadoras/{id} - Invalid locadora ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocadoraID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /locadoras/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateLocadoraRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /locadoras/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RequesterID = requesterID

	result, err := h.service.Update(r.Context(), locadoraID, &req)
	if err != nil {
		switch {
		case errors.Is(err, locadoras.ErrLocadoraNotFound):
			h.logger.Warn("PUT /locadoras/{id} - Locadora not found: locadora_id=%d", locadoraID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, locadoras.ErrAccessDenied):
			h.logger.Warn("PUT /locadoras/{id} - Access denied: locadora_id=%d, requester_id=%d",
				locadoraID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, locadoras.ErrDuplicateEmail):
			h.logger.Warn("PUT /locadoras/{id} - Email already registered: locadora_id=%d", locadoraID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

		case errors.Is(err, locadoras.ErrInvalidInput):
			h.logger.Warn("PUT /locadoras/{id} - Invalid input: locadora_id=%d, error=%v", locadoraID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /locadoras/{id} - Failed to update locadora: locadora_id=%d, error=%v",
				locadoraID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /locadoras/{id} - Locadora updated successfully: locadora_id=%d", locadoraID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
