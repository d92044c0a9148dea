package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	"github.com/avdmv/DTL-BookingService/internal/integrations/profileservice"
	"github.com/avdmv/DTL-BookingService/internal/service/availability/models"
	"github.com/avdmv/DTL-BookingService/pkg/types"
)

const (
	detailerUserID = "7f9c24e5-2b31-4bde-a0a9-c30a3bfa4f0e"
	customerUserID = "0d1f8a22-9a6e-48a3-9cfb-6f2f5b1f8888"
)

type mockAvailabilityRepo struct {
	getByDetailer      func(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error)
	replaceForDetailer func(ctx context.Context, detailerID int64, windows []*domain.WeeklyWindow) error
}

func (m *mockAvailabilityRepo) GetByDetailer(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error) {
	return m.getByDetailer(ctx, detailerID)
}

func (m *mockAvailabilityRepo) ReplaceForDetailer(ctx context.Context, detailerID int64, windows []*domain.WeeklyWindow) error {
	return m.replaceForDetailer(ctx, detailerID, windows)
}

type mockProfileClient struct{}

func (mockProfileClient) GetProfile(ctx context.Context, userID string) (*profileservice.Profile, error) {
	switch userID {
	case detailerUserID:
		return &profileservice.Profile{ID: userID, Role: "detailer"}, nil
	case customerUserID:
		return &profileservice.Profile{ID: userID, Role: "customer"}, nil
	default:
		return nil, profileservice.ErrProfileNotFound
	}
}

type fakeTxManager struct {
	readOnlyCalls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readOnlyCalls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newService(repo *mockAvailabilityRepo) *Service {
	return NewService(repo, mockProfileClient{}, &fakeTxManager{}, nopLogger{})
}

func storedWindow(id int64, dayOfWeek int, start, end string) *domain.WeeklyWindow {
	return &domain.WeeklyWindow{
		ID:         id,
		DetailerID: 3,
		DayOfWeek:  dayOfWeek,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
	}
}

func TestGetWeeklySchedule(t *testing.T) {
	repo := &mockAvailabilityRepo{
		getByDetailer: func(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error) {
			assert.Equal(t, int64(3), detailerID)
			return []*domain.WeeklyWindow{
				storedWindow(1, 1, "09:00", "17:00"),
				storedWindow(2, 3, "10:00", "14:00"),
			}, nil
		},
	}

	resp, err := newService(repo).GetWeeklySchedule(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.DetailerID)
	require.Len(t, resp.Windows, 2)
	assert.Equal(t, "09:00", resp.Windows[0].StartTime)
	assert.Equal(t, 3, resp.Windows[1].DayOfWeek)
}

func TestGetWeeklySchedule_EmptySchedule(t *testing.T) {
	repo := &mockAvailabilityRepo{
		getByDetailer: func(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error) {
			return nil, nil
		},
	}

	resp, err := newService(repo).GetWeeklySchedule(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestGetWeeklySchedule_RunsInReadOnlyTransaction(t *testing.T) {
	repo := &mockAvailabilityRepo{
		getByDetailer: func(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error) {
			return []*domain.WeeklyWindow{storedWindow(1, 1, "09:00", "17:00")}, nil
		},
	}
	txManager := &fakeTxManager{}
	svc := NewService(repo, mockProfileClient{}, txManager, nopLogger{})

	_, err := svc.GetWeeklySchedule(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 1, txManager.readOnlyCalls)
}

func TestGetWeeklySchedule_InvalidDetailerID(t *testing.T) {
	_, err := newService(&mockAvailabilityRepo{}).GetWeeklySchedule(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateWeeklySchedule_ReplacesWindows(t *testing.T) {
	var replaced []*domain.WeeklyWindow

	repo := &mockAvailabilityRepo{
		replaceForDetailer: func(ctx context.Context, detailerID int64, windows []*domain.WeeklyWindow) error {
			assert.Equal(t, int64(3), detailerID)
			replaced = windows
			return nil
		},
		getByDetailer: func(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error) {
			return []*domain.WeeklyWindow{storedWindow(11, 1, "09:00", "17:00")}, nil
		},
	}

	resp, err := newService(repo).UpdateWeeklySchedule(context.Background(), &models.UpdateScheduleRequest{
		UserID:     detailerUserID,
		DetailerID: 3,
		Windows: []models.WindowInput{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)

	require.Len(t, replaced, 1)
	assert.Equal(t, types.TimeString("09:00"), replaced[0].StartTime)
	assert.Equal(t, int64(3), replaced[0].DetailerID)

	require.Len(t, resp.Windows, 1)
	assert.Equal(t, int64(11), resp.Windows[0].ID)
}

func TestUpdateWeeklySchedule_EmptyListClearsSchedule(t *testing.T) {
	var replaced []*domain.WeeklyWindow
	called := false

	repo := &mockAvailabilityRepo{
		replaceForDetailer: func(ctx context.Context, detailerID int64, windows []*domain.WeeklyWindow) error {
			called = true
			replaced = windows
			return nil
		},
		getByDetailer: func(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error) {
			return nil, nil
		},
	}

	resp, err := newService(repo).UpdateWeeklySchedule(context.Background(), &models.UpdateScheduleRequest{
		UserID:     detailerUserID,
		DetailerID: 3,
	})
	require.NoError(t, err)

	assert.True(t, called)
	assert.Empty(t, replaced)
	assert.Empty(t, resp.Windows)
}

func TestUpdateWeeklySchedule_CustomerDenied(t *testing.T) {
	_, err := newService(&mockAvailabilityRepo{}).UpdateWeeklySchedule(context.Background(), &models.UpdateScheduleRequest{
		UserID:     customerUserID,
		DetailerID: 3,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateWeeklySchedule_Validation(t *testing.T) {
	tests := []struct {
		name   string
		window models.WindowInput
	}{
		{"day of week too big", models.WindowInput{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}},
		{"negative day of week", models.WindowInput{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00"}},
		{"malformed start time", models.WindowInput{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"}},
		{"malformed end time", models.WindowInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "25:00"}},
		{"start equals end", models.WindowInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}},
		{"start after end", models.WindowInput{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(&mockAvailabilityRepo{}).UpdateWeeklySchedule(context.Background(), &models.UpdateScheduleRequest{
				UserID:     detailerUserID,
				DetailerID: 3,
				Windows:    []models.WindowInput{tt.window},
			})
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}
