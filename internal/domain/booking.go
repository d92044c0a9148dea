package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer's reservation of a detailer's time
type Booking struct {
	ID              int64
	CustomerID      string // UUID пользователя из сервиса аутентификации
	DetailerID      int64
	ServiceID       int64
	BookingTime     time.Time
	DurationMinutes int
	Status          BookingStatus
	LocationAddress string

	// Denormalized data for history
	ServiceName string
	FinalPrice  float64 // Цена услуги на момент бронирования
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// End returns the end instant of the booking
func (b *Booking) End() time.Time {
	return b.BookingTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// IsActive returns true if the booking still blocks the detailer's time.
// Completed bookings stay active: the time was actually spent.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo returns true if the status transition is allowed
// by the operator workflow: pending → confirmed → completed, and any
// non-final status → cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusCompleted:
		return b.Status == StatusConfirmed
	case StatusCancelled:
		return b.Status == StatusPending || b.Status == StatusConfirmed
	default:
		return false
	}
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// DetailerBookingsFilter фильтр для выборки бронирований исполнителей
type DetailerBookingsFilter struct {
	DetailerID      *int64         // Фильтр по исполнителю (опционально, если nil - все)
	RangeStart      *time.Time     // Начало интервала (включительно)
	RangeEnd        *time.Time     // Конец интервала (исключительно)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
