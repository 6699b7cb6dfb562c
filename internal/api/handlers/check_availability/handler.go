package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hublumi/booking-service/internal/api/handlers"
	"github.com/hublumi/booking-service/internal/domain"
	checkAvailability "github.com/hublumi/booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidEquipmentID = "ID de equipamento inválido"
	msgInvalidStartDate   = "data inicial inválida, esperado YYYY-MM-DD"
	msgInvalidEndDate     = "data final inválida, esperado YYYY-MM-DD"
	msgInvalidQuantity    = "quantidade inválida"
	msgInvalidRange       = "data final anterior à data inicial"
	msgEquipmentNotFound  = "equipamento não encontrado"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipments/{equipmentId}/availability?startDate=...&endDate=...&quantity=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	equipmentID, err := strconv.ParseInt(vars["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /equipments/{id}/availability - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /equipments/{id}/availability - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /equipments/{id}/availability - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEndDate)
		return
	}

	var quantity *int
	if raw := query.Get("quantity"); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /equipments/{id}/availability - Invalid quantity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)
			return
		}
		quantity = &q
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		EquipmentID: equipmentID,
		StartDate:   startDate,
		EndDate:     endDate,
		Quantity:    quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipments/{id}/availability - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /equipments/{id}/availability - Invalid range: equipment_id=%d", equipmentID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /equipments/{id}/availability - Invalid input: equipment_id=%d, error=%v", equipmentID, err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		default:
			h.logger.Error("GET /equipments/{id}/availability - Failed: equipment_id=%d, error=%v", equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipments/{id}/availability - OK: equipment_id=%d, available=%d",
		equipmentID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
