package get_detailer_bookings

import (
	"context"

	"github.com/avdmv/DTL-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetDetailerBookings(ctx context.Context, req *models.GetDetailerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
