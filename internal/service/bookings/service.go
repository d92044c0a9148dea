package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	bookingRepo "github.com/avdmv/DTL-BookingService/internal/infra/storage/booking"
	profileClient "github.com/avdmv/DTL-BookingService/internal/integrations/profileservice"
	"github.com/avdmv/DTL-BookingService/internal/service/bookings/models"
)

// Роли пользователей в сервисе профилей
const (
	roleAdmin    = "admin"
	roleDetailer = "detailer"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Клиент видит только свою историю, администратор - любую
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%s, status=%v", req.CustomerID, req.Status)

	if req.CustomerID != req.UserID {
		if err := s.checkRoleAccess(ctx, req.UserID, roleAdmin); err != nil {
			s.logger.Warn("GetCustomerBookings: access denied for user=%s to customer=%s", req.UserID, req.CustomerID)
			return nil, err
		}
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%s", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%s", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetDetailerBookings получает бронирования исполнителя с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых записей.
// Доступно исполнителям и администраторам (рабочий дашборд).
//
// Примеры использования:
// - Все активные бронирования: указать только DetailerID
// - Бронирования на дату: RangeStart и RangeEnd задают границы суток
// - Только подтверждённые: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetDetailerBookings(ctx context.Context, req *models.GetDetailerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDetailerBookings: fetching bookings for detailer=%d, user=%s", req.DetailerID, req.UserID)

	if err := s.checkRoleAccess(ctx, req.UserID, roleAdmin, roleDetailer); err != nil {
		s.logger.Warn("GetDetailerBookings: access denied for user=%s to detailer=%d", req.UserID, req.DetailerID)
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetDetailerBookings: invalid filter for detailer=%d: %v", req.DetailerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetDetailerBookings: repository error for detailer=%d: %v", req.DetailerID, err)
		return nil, fmt.Errorf("%w: GetDetailerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDetailerBookings: successfully fetched %d bookings for detailer=%d", len(bookings), req.DetailerID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только своё бронирование, администратор - любое.
// Отменить можно только pending или confirmed бронирование.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%s", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != req.UserID {
		if err := s.checkRoleAccess(ctx, req.UserID, roleAdmin); err != nil {
			s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%d", req.UserID, bookingID)
			return err
		}
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования по рабочему процессу оператора:
// pending → confirmed → completed, отмена из любого нефинального статуса.
// Доступно только администраторам.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%s",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkRoleAccess(ctx, req.UserID, roleAdmin); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%s to booking id=%d", req.UserID, bookingID)
		return err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkBookingAccess проверяет, что пользователь имеет доступ к бронированию
// Владелец имеет доступ всегда, остальным нужна роль администратора
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, userID string) error {
	if booking.CustomerID == userID {
		return nil
	}

	if err := s.checkRoleAccess(ctx, userID, roleAdmin); err != nil {
		// Ошибка уже залогирована в checkRoleAccess
		return ErrAccessDenied
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
