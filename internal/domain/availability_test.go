package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avdmv/DTL-BookingService/pkg/types"
)

func TestWeeklyWindow_Covers(t *testing.T) {
	w := &WeeklyWindow{
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("17:00"),
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"fully inside", "10:00", "11:00", true},
		{"exact fit", "09:00", "17:00", true},
		{"starts at window start", "09:00", "10:00", true},
		{"ends at window end", "16:00", "17:00", true},
		{"starts before window", "08:30", "10:00", false},
		{"ends after window", "16:30", "17:30", false},
		{"entirely before", "07:00", "08:00", false},
		{"entirely after", "18:00", "19:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Covers(types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeeklyWindow_LengthMinutes(t *testing.T) {
	w := &WeeklyWindow{
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("17:30"),
	}
	assert.Equal(t, 510, w.LengthMinutes())
}

func TestDayOfWeekFromDate(t *testing.T) {
	// 2025-06-01 - воскресенье
	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		assert.Equal(t, i, DayOfWeekFromDate(sunday.AddDate(0, 0, i)))
	}
}
