package get_availability

import (
	"context"

	"github.com/avdmv/DTL-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetWeeklySchedule(ctx context.Context, detailerID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
