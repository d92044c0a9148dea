package update_availability

import "github.com/avdmv/DTL-BookingService/internal/service/availability/models"

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Windows []models.WindowInput `json:"windows"`
}
