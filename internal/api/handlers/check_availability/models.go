package check_availability

import (
	"github.com/hublumi/booking-service/internal/domain"
	checkAvailability "github.com/hublumi/booking-service/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	EquipmentID   int64  `json:"equipmentId"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"` // inclusiva
	TotalQuantity int    `json:"totalQuantity"`
	PeakDemand    int    `json:"peakDemand"`
	Available     int    `json:"available"`
	CanSatisfy    *bool  `json:"canSatisfy,omitempty"`
}

// FromUseCaseResponse converte o resultado do use case em HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		EquipmentID:   resp.EquipmentID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		TotalQuantity: resp.TotalQuantity,
		PeakDemand:    resp.PeakDemand,
		Available:     resp.Available,
		CanSatisfy:    resp.CanSatisfy,
	}
}
