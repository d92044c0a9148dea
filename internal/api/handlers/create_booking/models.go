package create_booking

import (
	"time"

	createBooking "github.com/avdmv/DTL-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID       int64   `json:"serviceId"`
	BookingTime     string  `json:"bookingTime"` // ISO 8601, например "2025-06-02T10:00:00Z"
	LocationAddress string  `json:"locationAddress"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerID      string  `json:"customerId"`
	DetailerID      int64   `json:"detailerId"`
	ServiceID       int64   `json:"serviceId"`
	BookingTime     string  `json:"bookingTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	LocationAddress string  `json:"locationAddress"`
	ServiceName     string  `json:"serviceName"`
	FinalPrice      float64 `json:"finalPrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID string) (*createBooking.Request, error) {
	bookingTime, err := time.Parse(time.RFC3339, r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:      customerID,
		ServiceID:       r.ServiceID,
		BookingTime:     bookingTime,
		LocationAddress: r.LocationAddress,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		DetailerID:      resp.DetailerID,
		ServiceID:       resp.ServiceID,
		BookingTime:     resp.BookingTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		LocationAddress: resp.LocationAddress,
		ServiceName:     resp.ServiceName,
		FinalPrice:      resp.FinalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
