package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	"github.com/avdmv/DTL-BookingService/internal/integrations/catalogservice"
	"github.com/avdmv/DTL-BookingService/pkg/types"
)

type mockBookingRepo struct {
	getWithFilter func(ctx context.Context, filter domain.DetailerBookingsFilter) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) GetWithFilter(ctx context.Context, filter domain.DetailerBookingsFilter) ([]*domain.Booking, error) {
	return m.getWithFilter(ctx, filter)
}

type mockAvailabilityRepo struct {
	getByDayOfWeek func(ctx context.Context, dayOfWeek int) ([]*domain.WeeklyWindow, error)
}

func (m *mockAvailabilityRepo) GetByDayOfWeek(ctx context.Context, dayOfWeek int) ([]*domain.WeeklyWindow, error) {
	return m.getByDayOfWeek(ctx, dayOfWeek)
}

type mockCatalogClient struct {
	getService func(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

func (m *mockCatalogClient) GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
	return m.getService(ctx, serviceID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func detailingService(durationMinutes int) *catalogservice.Service {
	return &catalogservice.Service{
		ID:              10,
		Name:            "Full Detail",
		Price:           150.0,
		DurationMinutes: durationMinutes,
		IsActive:        true,
	}
}

func window(id, detailerID int64, start, end string) *domain.WeeklyWindow {
	return &domain.WeeklyWindow{
		ID:         id,
		DetailerID: detailerID,
		DayOfWeek:  1,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
	}
}

func newTestUseCase(
	bookings []*domain.Booking,
	windows []*domain.WeeklyWindow,
	service *catalogservice.Service,
) *UseCase {
	return NewUseCase(
		&mockBookingRepo{
			getWithFilter: func(ctx context.Context, filter domain.DetailerBookingsFilter) ([]*domain.Booking, error) {
				return bookings, nil
			},
		},
		&mockAvailabilityRepo{
			getByDayOfWeek: func(ctx context.Context, dayOfWeek int) ([]*domain.WeeklyWindow, error) {
				return windows, nil
			},
		},
		&mockCatalogClient{
			getService: func(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
				if service == nil {
					return nil, catalogservice.ErrServiceNotFound
				}
				return service, nil
			},
		},
		nopLogger{},
	)
}

func TestExecute_ValidationFails(t *testing.T) {
	uc := newTestUseCase(nil, nil, detailingService(30))

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NoWindowsReturnsEmptyList(t *testing.T) {
	uc := newTestUseCase(nil, []*domain.WeeklyWindow{}, detailingService(30))

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_SingleDetailerNoBookings(t *testing.T) {
	uc := newTestUseCase(
		nil,
		[]*domain.WeeklyWindow{window(1, 7, "09:00", "17:00")},
		detailingService(30),
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 16)
	assert.Equal(t, mondayAt(9, 0), resp.Slots[0].StartTime)
	assert.Equal(t, mondayAt(16, 30), resp.Slots[15].StartTime)
}

func TestExecute_ExistingBookingRemovesSlot(t *testing.T) {
	uc := newTestUseCase(
		[]*domain.Booking{activeBooking(7, mondayAt(10, 0), 30)},
		[]*domain.WeeklyWindow{window(1, 7, "09:00", "17:00")},
		detailingService(30),
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 15)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, mondayAt(10, 0), slot.StartTime)
	}
}

func TestExecute_NoReturnedSlotOverlapsBooking(t *testing.T) {
	bookings := []*domain.Booking{
		activeBooking(7, mondayAt(10, 0), 90),
		activeBooking(7, mondayAt(14, 15), 45),
		activeBooking(8, mondayAt(11, 0), 30),
	}

	uc := newTestUseCase(
		bookings,
		[]*domain.WeeklyWindow{
			window(1, 7, "09:00", "17:00"),
			window(2, 8, "10:00", "14:00"),
		},
		detailingService(45),
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)

	for _, slot := range resp.Slots {
		for _, b := range bookings {
			if b.DetailerID != slot.DetailerID {
				continue
			}
			assert.False(t, domain.Overlaps(slot.StartTime, slot.EndTime, b.BookingTime, b.End()),
				"slot %v-%v overlaps booking %v-%v of detailer %d",
				slot.StartTime, slot.EndTime, b.BookingTime, b.End(), b.DetailerID)
		}
	}
}

func TestExecute_MultipleDetailersNoGlobalDedup(t *testing.T) {
	// Два свободных исполнителя с одинаковыми окнами: каждый момент времени
	// встречается дважды, по разу на исполнителя
	uc := newTestUseCase(
		nil,
		[]*domain.WeeklyWindow{
			window(1, 7, "09:00", "10:00"),
			window(2, 8, "09:00", "10:00"),
		},
		detailingService(30),
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	// Порядок: все слоты первого окна, затем второго
	assert.Equal(t, int64(7), resp.Slots[0].DetailerID)
	assert.Equal(t, int64(7), resp.Slots[1].DetailerID)
	assert.Equal(t, int64(8), resp.Slots[2].DetailerID)
	assert.Equal(t, int64(8), resp.Slots[3].DetailerID)
	assert.Equal(t, resp.Slots[0].StartTime, resp.Slots[2].StartTime)
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase(
		[]*domain.Booking{activeBooking(7, mondayAt(12, 0), 60)},
		[]*domain.WeeklyWindow{window(1, 7, "09:00", "17:00")},
		detailingService(30),
	)

	first, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection refused")

	uc := NewUseCase(
		&mockBookingRepo{
			getWithFilter: func(ctx context.Context, filter domain.DetailerBookingsFilter) ([]*domain.Booking, error) {
				return nil, storeErr
			},
		},
		&mockAvailabilityRepo{
			getByDayOfWeek: func(ctx context.Context, dayOfWeek int) ([]*domain.WeeklyWindow, error) {
				return []*domain.WeeklyWindow{window(1, 7, "09:00", "17:00")}, nil
			},
		},
		&mockCatalogClient{
			getService: func(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
				return detailingService(30), nil
			},
		},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_BookingRangeQueryUsesDayBounds(t *testing.T) {
	var captured domain.DetailerBookingsFilter

	uc := NewUseCase(
		&mockBookingRepo{
			getWithFilter: func(ctx context.Context, filter domain.DetailerBookingsFilter) ([]*domain.Booking, error) {
				captured = filter
				return nil, nil
			},
		},
		&mockAvailabilityRepo{
			getByDayOfWeek: func(ctx context.Context, dayOfWeek int) ([]*domain.WeeklyWindow, error) {
				return []*domain.WeeklyWindow{window(1, 7, "09:00", "17:00")}, nil
			},
		},
		&mockCatalogClient{
			getService: func(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
				return detailingService(30), nil
			},
		},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: monday})
	require.NoError(t, err)

	require.NotNil(t, captured.RangeStart)
	require.NotNil(t, captured.RangeEnd)
	assert.Equal(t, mondayAt(0, 0), *captured.RangeStart)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), *captured.RangeEnd)
	assert.False(t, captured.IncludeInactive)
}
