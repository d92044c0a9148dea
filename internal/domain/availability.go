package domain

import (
	"time"

	"github.com/avdmv/DTL-BookingService/pkg/types"
)

// WeeklyWindow represents a recurring block of time on a given day of week
// during which a detailer is willing to work.
// One detailer may have several (possibly overlapping) windows per day,
// the rows are treated as independent.
type WeeklyWindow struct {
	ID         int64
	DetailerID int64
	DayOfWeek  int // 0 = Sunday ... 6 = Saturday
	StartTime  types.TimeString
	EndTime    types.TimeString
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LengthMinutes returns the window length in minutes
func (w *WeeklyWindow) LengthMinutes() int {
	start, err := w.StartTime.Minutes()
	if err != nil {
		return 0
	}
	end, err := w.EndTime.Minutes()
	if err != nil {
		return 0
	}
	return end - start
}

// Covers returns true if the interval [start, end] lies within the window
func (w *WeeklyWindow) Covers(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}

// DayOfWeekFromDate возвращает день недели в нумерации WeeklyWindow (0 = воскресенье)
func DayOfWeekFromDate(date time.Time) int {
	return int(date.Weekday())
}
