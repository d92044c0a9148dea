package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "db format with seconds", input: "14:30:00", want: "14:30"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "10:61", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "simple add", start: "09:00", minutes: 30, want: "09:30"},
		{name: "hour rollover", start: "09:45", minutes: 30, want: "10:15"},
		{name: "zero minutes", start: "12:00", minutes: 0, want: "12:00"},
		{name: "negative offset", start: "10:00", minutes: -30, want: "09:30"},
		{name: "past midnight", start: "23:45", minutes: 30, wantErr: true},
		{name: "before day start", start: "00:10", minutes: -30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("17:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	got, err := TimeString("14:30").OnDate(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 2, 14, 30, 0, 0, time.Local), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan([]byte("17:00:00")))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan("08:45"))
	assert.Equal(t, TimeString("08:45"), ts)

	require.Error(t, ts.Scan(42))
}
