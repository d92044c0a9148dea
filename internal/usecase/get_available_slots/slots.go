package get_available_slots

import (
	"time"

	"github.com/avdmv/DTL-BookingService/internal/domain"
)

// enumerateSlots проецирует еженедельное окно на календарную дату и генерирует
// кандидатов фиксированной длины durationMinutes с шагом stepMinutes.
//
// Кандидат попадает в результат, пока целиком помещается в окно:
// start + duration <= windowEnd. Если услуга длиннее окна, результат пуст.
// При шаге меньше длительности соседние кандидаты пересекаются между собой -
// это ожидаемо, прореживание остаётся на стороне потребителя.
func enumerateSlots(window *domain.WeeklyWindow, date time.Time, durationMinutes, stepMinutes int) ([]domain.Slot, error) {
	windowStart, err := window.StartTime.OnDate(date)
	if err != nil {
		return nil, err
	}

	windowEnd, err := window.EndTime.OnDate(date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	slots := make([]domain.Slot, 0)
	for start := windowStart; !start.Add(duration).After(windowEnd); start = start.Add(step) {
		slots = append(slots, domain.Slot{
			DetailerID: window.DetailerID,
			StartTime:  start,
			EndTime:    start.Add(duration),
		})
	}

	return slots, nil
}

// filterConflicting отбрасывает кандидатов, пересекающихся хотя бы с одним
// активным бронированием. Сравнение полуинтервалов: слот, начинающийся ровно
// в момент окончания бронирования, не конфликтует.
func filterConflicting(candidates []domain.Slot, bookings []*domain.Booking) []domain.Slot {
	free := make([]domain.Slot, 0, len(candidates))

	for i := range candidates {
		conflict := false
		for _, b := range bookings {
			if domain.SlotOverlapsBooking(&candidates[i], b) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, candidates[i])
		}
	}

	return free
}

// bookingsByDetailer группирует бронирования по исполнителю
func bookingsByDetailer(bookings []*domain.Booking) map[int64][]*domain.Booking {
	grouped := make(map[int64][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		grouped[b.DetailerID] = append(grouped[b.DetailerID], b)
	}
	return grouped
}

// dayBounds возвращает границы суток [00:00 даты, 00:00 следующего дня)
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
