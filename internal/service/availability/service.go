package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	profileClient "github.com/avdmv/DTL-BookingService/internal/integrations/profileservice"
	"github.com/avdmv/DTL-BookingService/internal/service/availability/models"
	"github.com/avdmv/DTL-BookingService/pkg/types"
)

// Роли пользователей в сервисе профилей
const (
	roleAdmin    = "admin"
	roleDetailer = "detailer"
)

// Service сервис для работы с недельным расписанием исполнителей
type Service struct {
	availabilityRepo AvailabilityRepository
	profileClient    ProfileServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	availabilityRepo AvailabilityRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		profileClient:    profileClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetWeeklySchedule получает недельное расписание исполнителя
func (s *Service) GetWeeklySchedule(ctx context.Context, detailerID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeeklySchedule: fetching schedule for detailer=%d", detailerID)

	if detailerID <= 0 {
		return nil, fmt.Errorf("%w: detailerID must be positive", ErrInvalidInput)
	}

	var windows []*domain.WeeklyWindow

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		windows, err = s.availabilityRepo.GetByDetailer(txCtx, detailerID)
		if err != nil {
			return fmt.Errorf("%w: GetWeeklySchedule - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetWeeklySchedule: failed to fetch schedule for detailer=%d: %v", detailerID, err)
		return nil, err
	}

	s.logger.Info("GetWeeklySchedule: successfully fetched %d windows for detailer=%d", len(windows), detailerID)
	return models.FromDomainWindows(detailerID, windows), nil
}

// UpdateWeeklySchedule полностью заменяет недельное расписание исполнителя.
// Пустой список окон допустим - исполнитель снимает себя с записи.
// Доступно исполнителям и администраторам.
func (s *Service) UpdateWeeklySchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateWeeklySchedule: replacing schedule for detailer=%d with %d windows by user=%s",
		req.DetailerID, len(req.Windows), req.UserID)

	if err := validateScheduleRequest(req); err != nil {
		s.logger.Warn("UpdateWeeklySchedule: validation failed for detailer=%d: %v", req.DetailerID, err)
		return nil, err
	}

	if err := s.checkRoleAccess(ctx, req.UserID, roleAdmin, roleDetailer); err != nil {
		s.logger.Warn("UpdateWeeklySchedule: access denied for user=%s to detailer=%d", req.UserID, req.DetailerID)
		return nil, err
	}

	windows := req.ToDomainWindows()

	// Замена delete+insert должна быть атомарной
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.ReplaceForDetailer(txCtx, req.DetailerID, windows); err != nil {
			return fmt.Errorf("%w: UpdateWeeklySchedule - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateWeeklySchedule: failed to replace schedule for detailer=%d: %v", req.DetailerID, err)
		return nil, err
	}

	// Перечитываем для выдачи присвоенных ID
	saved, err := s.availabilityRepo.GetByDetailer(ctx, req.DetailerID)
	if err != nil {
		s.logger.Error("UpdateWeeklySchedule: failed to reread schedule for detailer=%d: %v", req.DetailerID, err)
		return nil, fmt.Errorf("%w: UpdateWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeeklySchedule: successfully replaced schedule for detailer=%d, %d windows",
		req.DetailerID, len(saved))
	return models.FromDomainWindows(req.DetailerID, saved), nil
}

// validateScheduleRequest валидирует запрос на замену расписания
func validateScheduleRequest(req *models.UpdateScheduleRequest) error {
	if req.DetailerID <= 0 {
		return fmt.Errorf("%w: detailerID must be positive", ErrInvalidInput)
	}

	for i, w := range req.Windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return fmt.Errorf("%w: window %d: dayOfWeek must be in [0, 6]", ErrInvalidWindow, i)
		}

		start, err := types.NewTimeStringFromString(w.StartTime)
		if err != nil {
			return fmt.Errorf("%w: window %d: invalid startTime %q", ErrInvalidWindow, i, w.StartTime)
		}

		end, err := types.NewTimeStringFromString(w.EndTime)
		if err != nil {
			return fmt.Errorf("%w: window %d: invalid endTime %q", ErrInvalidWindow, i, w.EndTime)
		}

		if !start.IsBefore(end) {
			return fmt.Errorf("%w: window %d: startTime must be before endTime", ErrInvalidWindow, i)
		}
	}

	return nil
}

// checkRoleAccess проверяет, что роль пользователя входит в список разрешённых
func (s *Service) checkRoleAccess(ctx context.Context, userID string, roles ...string) error {
	profile, err := s.profileClient.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			s.logger.Warn("checkRoleAccess: profile for user=%s not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkRoleAccess: failed to get profile for user=%s: %v", userID, err)
		return fmt.Errorf("%w: checkRoleAccess - failed to get profile: %v", ErrInternal, err)
	}

	for _, role := range roles {
		if profile.Role == role {
			return nil
		}
	}

	s.logger.Warn("checkRoleAccess: user=%s with role=%s has no access", userID, profile.Role)
	return ErrAccessDenied
}
