package create_booking

import (
	"time"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	"github.com/avdmv/DTL-BookingService/pkg/types"
)

// coveringDetailers возвращает исполнителей, чьё рабочее окно целиком покрывает
// интервал [start, end], в порядке перебора окон. Порядок окон задаёт
// репозиторий (исполнитель, затем время начала), поэтому назначение
// детерминировано. Дубликаты исполнителей с несколькими окнами схлопываются.
func coveringDetailers(windows []*domain.WeeklyWindow, start, end types.TimeString) []int64 {
	seen := make(map[int64]bool, len(windows))
	detailers := make([]int64, 0, len(windows))

	for _, w := range windows {
		if seen[w.DetailerID] {
			continue
		}
		if w.Covers(start, end) {
			seen[w.DetailerID] = true
			detailers = append(detailers, w.DetailerID)
		}
	}

	return detailers
}

// hasConflict проверяет, пересекается ли интервал [start, end) хотя бы
// с одним активным бронированием
func hasConflict(bookings []*domain.Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if domain.Overlaps(start, end, b.BookingTime, b.End()) {
			return true
		}
	}
	return false
}

// dayBounds возвращает границы суток [00:00 даты, 00:00 следующего дня)
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
