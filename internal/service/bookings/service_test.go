package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	bookingRepo "github.com/avdmv/DTL-BookingService/internal/infra/storage/booking"
	"github.com/avdmv/DTL-BookingService/internal/integrations/profileservice"
	"github.com/avdmv/DTL-BookingService/internal/service/bookings/models"
	"github.com/avdmv/DTL-BookingService/pkg/ptr"
)

const (
	ownerID    = "7f9c24e5-2b31-4bde-a0a9-c30a3bfa4f0e"
	strangerID = "0d1f8a22-9a6e-48a3-9cfb-6f2f5b1f8888"
	adminID    = "ab1c0000-0000-4000-8000-000000000001"
)

type mockBookingRepo struct {
	getByID         func(ctx context.Context, id int64) (*domain.Booking, error)
	getByCustomerID func(ctx context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	getWithFilter   func(ctx context.Context, filter domain.DetailerBookingsFilter) ([]*domain.Booking, error)
	updateStatus    func(ctx context.Context, id int64, status domain.BookingStatus) error
	cancel          func(ctx context.Context, id int64, reason string) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByID(ctx, id)
}

func (m *mockBookingRepo) GetByCustomerID(ctx context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.getByCustomerID(ctx, customerID, status)
}

func (m *mockBookingRepo) GetWithFilter(ctx context.Context, filter domain.DetailerBookingsFilter) ([]*domain.Booking, error) {
	return m.getWithFilter(ctx, filter)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.updateStatus(ctx, id, status)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	return m.cancel(ctx, id, reason)
}

// mockProfileClient выдает роли по фиксированной таблице
type mockProfileClient struct{}

func (mockProfileClient) GetProfile(ctx context.Context, userID string) (*profileservice.Profile, error) {
	switch userID {
	case adminID:
		return &profileservice.Profile{ID: userID, Role: "admin"}, nil
	case ownerID, strangerID:
		return &profileservice.Profile{ID: userID, Role: "customer"}, nil
	default:
		return nil, profileservice.ErrProfileNotFound
	}
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              5,
		CustomerID:      ownerID,
		DetailerID:      3,
		ServiceID:       10,
		BookingTime:     time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          status,
		LocationAddress: "12 Main Street, Springfield",
		ServiceName:     "Full Detail",
		FinalPrice:      150.0,
	}
}

func newService(repo *mockBookingRepo) *Service {
	return NewService(repo, mockProfileClient{}, nopLogger{})
}

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusConfirmed), nil
		},
	}

	resp, err := newService(repo).GetByID(context.Background(), 5, ownerID)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, ownerID, resp.CustomerID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusConfirmed), nil
		},
	}

	_, err := newService(repo).GetByID(context.Background(), 5, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesAnyBooking(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusConfirmed), nil
		},
	}

	_, err := newService(repo).GetByID(context.Background(), 5, adminID)
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	_, err := newService(repo).GetByID(context.Background(), 404, ownerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings_OwnHistory(t *testing.T) {
	repo := &mockBookingRepo{
		getByCustomerID: func(ctx context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
			assert.Equal(t, ownerID, customerID)
			assert.Nil(t, status)
			return []*domain.Booking{testBooking(domain.StatusPending)}, nil
		},
	}

	resp, err := newService(repo).GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID:     ownerID,
		CustomerID: ownerID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetCustomerBookings_StrangerDenied(t *testing.T) {
	svc := newService(&mockBookingRepo{})

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID:     strangerID,
		CustomerID: ownerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	svc := newService(&mockBookingRepo{})

	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID:     ownerID,
		CustomerID: ownerID,
		Status:     ptr.Ptr("rescheduled"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDetailerBookings_FilterPassedThrough(t *testing.T) {
	rangeStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	rangeEnd := rangeStart.AddDate(0, 0, 1)

	repo := &mockBookingRepo{
		getWithFilter: func(ctx context.Context, filter domain.DetailerBookingsFilter) ([]*domain.Booking, error) {
			require.NotNil(t, filter.DetailerID)
			assert.Equal(t, int64(3), *filter.DetailerID)
			assert.Equal(t, rangeStart, *filter.RangeStart)
			assert.Equal(t, rangeEnd, *filter.RangeEnd)
			assert.False(t, filter.IncludeInactive)
			return []*domain.Booking{testBooking(domain.StatusConfirmed)}, nil
		},
	}

	resp, err := newService(repo).GetDetailerBookings(context.Background(), &models.GetDetailerBookingsRequest{
		UserID:     adminID,
		DetailerID: 3,
		RangeStart: &rangeStart,
		RangeEnd:   &rangeEnd,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetDetailerBookings_CustomerDenied(t *testing.T) {
	svc := newService(&mockBookingRepo{})

	_, err := svc.GetDetailerBookings(context.Background(), &models.GetDetailerBookingsRequest{
		UserID:     ownerID,
		DetailerID: 3,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_OwnerCancelsPending(t *testing.T) {
	var cancelledID int64
	var cancelReason string

	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusPending), nil
		},
		cancel: func(ctx context.Context, id int64, reason string) error {
			cancelledID = id
			cancelReason = reason
			return nil
		},
	}

	err := newService(repo).Cancel(context.Background(), 5, &models.CancelBookingRequest{
		UserID:             ownerID,
		CancellationReason: "plans changed",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), cancelledID)
	assert.Equal(t, "plans changed", cancelReason)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusCompleted), nil
		},
	}

	err := newService(repo).Cancel(context.Background(), 5, &models.CancelBookingRequest{
		UserID: ownerID,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusPending), nil
		},
	}

	err := newService(repo).Cancel(context.Background(), 5, &models.CancelBookingRequest{
		UserID: strangerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_AdminConfirmsPending(t *testing.T) {
	var updatedStatus domain.BookingStatus

	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusPending), nil
		},
		updateStatus: func(ctx context.Context, id int64, status domain.BookingStatus) error {
			updatedStatus = status
			return nil
		},
	}

	err := newService(repo).UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		UserID: adminID,
		Status: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updatedStatus)
}

func TestUpdateStatus_OwnerIsNotAdmin(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusPending), nil
		},
	}

	err := newService(repo).UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		UserID: ownerID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusPending), nil
		},
	}

	// pending -> completed минует confirmed
	err := newService(repo).UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		UserID: adminID,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusPending), nil
		},
	}

	err := newService(repo).UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		UserID: adminID,
		Status: "rescheduled",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
