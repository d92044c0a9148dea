package update_availability

import (
	"context"

	"github.com/avdmv/DTL-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	UpdateWeeklySchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
