package models

import (
	"errors"
	"time"

	"github.com/avdmv/DTL-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             string `json:"userId"` // UUID инициатора
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID string `json:"userId"` // UUID инициатора
	Status string `json:"status"`
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	UserID     string  `json:"userId"`     // UUID инициатора
	CustomerID string  `json:"customerId"` // UUID клиента, чья история запрашивается
	Status     *string `json:"status,omitempty"`
}

// GetDetailerBookingsRequest запрос на получение бронирований исполнителя
type GetDetailerBookingsRequest struct {
	UserID          string     `json:"userId"` // UUID инициатора
	DetailerID      int64      `json:"detailerId"`
	RangeStart      *time.Time `json:"rangeStart,omitempty"`      // Начало периода (опционально)
	RangeEnd        *time.Time `json:"rangeEnd,omitempty"`        // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDetailerBookingsRequest) ToDomainFilter() (domain.DetailerBookingsFilter, error) {
	filter := domain.DetailerBookingsFilter{
		DetailerID:      &r.DetailerID,
		RangeStart:      r.RangeStart,
		RangeEnd:        r.RangeEnd,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	CustomerID      string `json:"customerId"`
	DetailerID      int64  `json:"detailerId"`
	ServiceID       int64  `json:"serviceId"`
	BookingTime     string `json:"bookingTime"` // ISO 8601
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	LocationAddress string `json:"locationAddress"`

	// Денормализованные данные
	ServiceName string  `json:"serviceName"`
	FinalPrice  float64 `json:"finalPrice"`
	Notes       *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		DetailerID:         b.DetailerID,
		ServiceID:          b.ServiceID,
		BookingTime:        b.BookingTime.Format(time.RFC3339),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		LocationAddress:    b.LocationAddress,
		ServiceName:        b.ServiceName,
		FinalPrice:         b.FinalPrice,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
