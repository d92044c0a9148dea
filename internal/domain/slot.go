package domain

import "time"

// Slot represents a candidate, not-yet-committed time window offered to a customer.
// Slots are ephemeral: they are computed on request and never persisted.
type Slot struct {
	DetailerID int64
	StartTime  time.Time
	EndTime    time.Time
}

// DurationMinutes returns the slot length in minutes
func (s *Slot) DurationMinutes() int {
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// SlotOverlapsBooking reports whether the slot conflicts with the booking.
// Cancelled bookings never conflict.
func SlotOverlapsBooking(s *Slot, b *Booking) bool {
	if !b.IsActive() {
		return false
	}
	return Overlaps(s.StartTime, s.EndTime, b.BookingTime, b.End())
}
