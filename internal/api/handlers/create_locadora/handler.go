package create_locadora

import (
	"errors"
	"net/http"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/service/locadoras"
	"github.com/hublumi/booking-service/internal/service/locadoras/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgDuplicateEmail     = "e-mail já cadastrado"
	msgDuplicateCNPJ      = "CNPJ já cadastrado"
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

// Handle POST /api/v1/locadoras
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocadoraRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locadoras - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, locadoras.ErrDuplicateEmail):
			h.logger.Warn("POST /locadoras - Email already registered: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

		case errors.Is(err, locadoras.ErrDuplicateCNPJ):
			h.logger.Warn("POST /locadoras - CNPJ already registered: cnpj=%s", req.CNPJ)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCNPJ)

		case errors.Is(err, locadoras.ErrInvalidInput):
			h.logger.Warn("POST /locadoras - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /locadoras - Failed to create locadora: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locadoras - Locadora created successfully: locadora_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
