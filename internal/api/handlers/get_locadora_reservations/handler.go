package get_locadora_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/api/middleware"
	"github.com/hublumi/booking-service/internal/domain"
	"github.com/hublumi/booking-service/internal/service/reservations"
	"github.com/hublumi/booking-service/internal/service/reservations/models"
)

const (
	msgInvalidLocadoraID  = "ID de locadora inválido"
	msgInvalidEquipmentID = "ID de equipamento inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingUserID      = "ID do usuário ausente"
	msgForbidden          = "acesso negado"
	msgInvalidFilter      = "filtro inválido"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locadoras/{locadoraId}/reservations
// Filtros opcionais: equipmentId, startDate, endDate, status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locadoraID, err := strconv.ParseInt(vars["locadoraId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locadoras/{id}/reservations - Invalid locadora ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocadoraID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /locadoras/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	serviceReq := &models.GetLocadoraReservationsRequest{
		RequesterID: requesterID,
		LocadoraID:  locadoraID,
	}

	if raw := query.Get("equipmentId"); raw != "" {
		equipmentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /locadoras/{id}/reservations - Invalid equipment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEquipmentID)
			return
		}
		serviceReq.EquipmentID = &equipmentID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /locadoras/{id}/reservations - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /locadoras/{id}/reservations - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		serviceReq.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		serviceReq.IncludeInactive = raw == "true"
	}

	result, err := h.service.GetLocadoraReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /locadoras/{id}/reservations - Access denied: locadora_id=%d, requester_id=%d",
				locadoraID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /locadoras/{id}/reservations - Invalid filter: locadora_id=%d", locadoraID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /locadoras/{id}/reservations - Failed to get reservations: locadora_id=%d, error=%v",
				locadoraID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locadoras/{id}/reservations - Retrieved %d reservations: locadora_id=%d",
		len(result.Reservations), locadoraID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
