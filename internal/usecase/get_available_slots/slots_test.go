package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	"github.com/avdmv/DTL-BookingService/pkg/types"
)

// 2025-06-02 - понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func testWindow(detailerID int64, start, end string) *domain.WeeklyWindow {
	return &domain.WeeklyWindow{
		ID:         1,
		DetailerID: detailerID,
		DayOfWeek:  1, // понедельник
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
	}
}

func TestEnumerateSlots_FullWorkingDay(t *testing.T) {
	// Окно 09:00-17:00, услуга 30 минут, шаг 30 минут
	slots, err := enumerateSlots(testWindow(7, "09:00", "17:00"), monday, 30, 30)
	require.NoError(t, err)

	require.Len(t, slots, 16)
	assert.Equal(t, mondayAt(9, 0), slots[0].StartTime)
	assert.Equal(t, mondayAt(9, 30), slots[0].EndTime)
	assert.Equal(t, mondayAt(16, 30), slots[len(slots)-1].StartTime)
	assert.Equal(t, mondayAt(17, 0), slots[len(slots)-1].EndTime)
}

func TestEnumerateSlots_SlotProperties(t *testing.T) {
	window := testWindow(7, "10:00", "13:45")
	windowStart := mondayAt(10, 0)
	windowEnd := mondayAt(13, 45)

	slots, err := enumerateSlots(window, monday, 45, 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		assert.Equal(t, 45, slot.DurationMinutes())
		assert.Equal(t, int64(7), slot.DetailerID)
		assert.False(t, slot.StartTime.Before(windowStart))
		assert.False(t, slot.EndTime.After(windowEnd))
	}
}

func TestEnumerateSlots_DurationLongerThanWindow(t *testing.T) {
	// Услуга 120 минут не помещается в окно 09:00-10:00
	slots, err := enumerateSlots(testWindow(1, "09:00", "10:00"), monday, 120, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEnumerateSlots_ExactFit(t *testing.T) {
	// Услуга ровно в длину окна - один кандидат
	slots, err := enumerateSlots(testWindow(1, "09:00", "10:00"), monday, 60, 30)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, mondayAt(9, 0), slots[0].StartTime)
	assert.Equal(t, mondayAt(10, 0), slots[0].EndTime)
}

func TestEnumerateSlots_StepSmallerThanDuration(t *testing.T) {
	// Шаг 30 < длительность 60: кандидаты пересекаются между собой,
	// это контрактное поведение
	slots, err := enumerateSlots(testWindow(1, "09:00", "11:00"), monday, 60, 30)
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, mondayAt(9, 0), slots[0].StartTime)
	assert.Equal(t, mondayAt(9, 30), slots[1].StartTime)
	assert.Equal(t, mondayAt(10, 0), slots[2].StartTime)
	assert.True(t, domain.Overlaps(slots[0].StartTime, slots[0].EndTime, slots[1].StartTime, slots[1].EndTime))
}

func activeBooking(detailerID int64, start time.Time, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		DetailerID:      detailerID,
		BookingTime:     start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestFilterConflicting_RemovesBookedSlot(t *testing.T) {
	// Окно 09:00-17:00, бронирование 10:00-10:30:
	// слот 10:00 исчезает, соседние 09:30 и 10:30 остаются
	candidates, err := enumerateSlots(testWindow(7, "09:00", "17:00"), monday, 30, 30)
	require.NoError(t, err)
	require.Len(t, candidates, 16)

	free := filterConflicting(candidates, []*domain.Booking{
		activeBooking(7, mondayAt(10, 0), 30),
	})

	require.Len(t, free, 15)

	starts := make(map[time.Time]bool, len(free))
	for _, s := range free {
		starts[s.StartTime] = true
	}
	assert.False(t, starts[mondayAt(10, 0)])
	assert.True(t, starts[mondayAt(9, 30)])
	assert.True(t, starts[mondayAt(10, 30)])
}

func TestFilterConflicting_TouchingEndpointsDoNotConflict(t *testing.T) {
	candidates := []domain.Slot{
		{DetailerID: 1, StartTime: mondayAt(10, 30), EndTime: mondayAt(11, 0)},
	}

	// Бронирование 10:00-10:30 заканчивается ровно в начале слота
	free := filterConflicting(candidates, []*domain.Booking{
		activeBooking(1, mondayAt(10, 0), 30),
	})

	assert.Len(t, free, 1)
}

func TestFilterConflicting_IgnoresCancelledBookings(t *testing.T) {
	candidates := []domain.Slot{
		{DetailerID: 1, StartTime: mondayAt(10, 0), EndTime: mondayAt(10, 30)},
	}

	cancelled := activeBooking(1, mondayAt(10, 0), 30)
	cancelled.Status = domain.StatusCancelled

	free := filterConflicting(candidates, []*domain.Booking{cancelled})
	assert.Len(t, free, 1)
}

func TestFilterConflicting_PartialOverlapConflicts(t *testing.T) {
	tests := []struct {
		name         string
		bookingStart time.Time
		bookingLen   int
		wantConflict bool
	}{
		{name: "booking covers slot start", bookingStart: mondayAt(9, 45), bookingLen: 30, wantConflict: true},
		{name: "booking covers slot end", bookingStart: mondayAt(10, 15), bookingLen: 30, wantConflict: true},
		{name: "booking inside slot", bookingStart: mondayAt(10, 10), bookingLen: 10, wantConflict: true},
		{name: "booking contains slot", bookingStart: mondayAt(9, 0), bookingLen: 180, wantConflict: true},
		{name: "booking before slot", bookingStart: mondayAt(9, 0), bookingLen: 60, wantConflict: false},
		{name: "booking after slot", bookingStart: mondayAt(10, 30), bookingLen: 60, wantConflict: false},
	}

	slot := domain.Slot{DetailerID: 1, StartTime: mondayAt(10, 0), EndTime: mondayAt(10, 30)}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free := filterConflicting([]domain.Slot{slot}, []*domain.Booking{
				activeBooking(1, tt.bookingStart, tt.bookingLen),
			})
			if tt.wantConflict {
				assert.Empty(t, free)
			} else {
				assert.Len(t, free, 1)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	start, end := dayBounds(time.Date(2025, 6, 2, 15, 42, 7, 0, time.UTC))

	assert.Equal(t, mondayAt(0, 0), start)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), end)
}

func TestBookingsByDetailer(t *testing.T) {
	bookings := []*domain.Booking{
		activeBooking(1, mondayAt(9, 0), 30),
		activeBooking(2, mondayAt(9, 0), 30),
		activeBooking(1, mondayAt(12, 0), 30),
	}

	grouped := bookingsByDetailer(bookings)

	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)
	assert.Nil(t, grouped[3])
}
