package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	bookingRepo "github.com/avdmv/DTL-BookingService/internal/infra/storage/booking"
	catalogClient "github.com/avdmv/DTL-BookingService/internal/integrations/catalogservice"
	profileClient "github.com/avdmv/DTL-BookingService/internal/integrations/profileservice"
	"github.com/avdmv/DTL-BookingService/pkg/types"
)

// UseCase use case для создания бронирования с назначением исполнителя
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	catalogClient    CatalogServiceClient
	profileClient    ProfileServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	catalogClient CatalogServiceClient,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		catalogClient:    catalogClient,
		profileClient:    profileClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Выбор исполнителя и вставка выполняются в сериализуемой транзакции
// с блокировкой дневных бронирований (FOR UPDATE). Конкурентную вставку,
// проскочившую мимо прикладной проверки, отклоняет exclusion constraint
// хранилища - такой отказ транслируется в ErrSlotConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, service=%d, time=%s",
		req.CustomerID, req.ServiceID, req.BookingTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (неактивная считается отсутствующей)
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Проверяем профиль клиента. Недоступность сервиса профилей не
	// блокирует бронирование (graceful degradation).
	if _, err := uc.profileClient.GetProfileWithGracefulDegradation(ctx, req.CustomerID); err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: customer %s has no profile", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Warn("CreateBooking: skipping profile check for customer %s: %v", req.CustomerID, err)
	}

	// 4. Вычисляем границы запрошенного интервала как время суток
	startTime := types.NewTimeString(req.BookingTime)
	endTime, err := startTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		// Услуга не помещается в сутки с запрошенного времени
		uc.logger.Warn("CreateBooking: booking at %s does not fit into the day: %v", startTime, err)
		return nil, fmt.Errorf("%w: booking must end on the same day", ErrInvalidInput)
	}

	var result *domain.Booking

	// 5. Назначение исполнителя и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Окна на день недели; отбираем те, что покрывают интервал
		dayOfWeek := domain.DayOfWeekFromDate(req.BookingTime)

		windows, err := uc.availabilityRepo.GetByDayOfWeek(txCtx, dayOfWeek)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get weekly windows: %v", err)
			return fmt.Errorf("%w: failed to get weekly windows: %v", ErrInternal, err)
		}

		detailers := coveringDetailers(windows, startTime, endTime)
		if len(detailers) == 0 {
			uc.logger.Warn("CreateBooking: no windows cover %s-%s on day_of_week=%d",
				startTime, endTime, dayOfWeek)
			return ErrNoDetailersAvailable
		}

		// 5.2. Дневные бронирования с блокировкой FOR UPDATE
		dayStart, dayEnd := dayBounds(req.BookingTime)
		filter := domain.DetailerBookingsFilter{
			RangeStart:      &dayStart,
			RangeEnd:        &dayEnd,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		grouped := make(map[int64][]*domain.Booking, len(bookings))
		for _, b := range bookings {
			grouped[b.DetailerID] = append(grouped[b.DetailerID], b)
		}

		// 5.3. Первый покрывающий исполнитель без конфликтующего бронирования
		requestedEnd := req.BookingTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

		var (
			assigned int64
			found    bool
		)
		for _, detailerID := range detailers {
			if !hasConflict(grouped[detailerID], req.BookingTime, requestedEnd) {
				assigned = detailerID
				found = true
				break
			}
		}

		if !found {
			uc.logger.Warn("CreateBooking: all %d covering detailers are busy at %s",
				len(detailers), req.BookingTime.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: assigned detailer=%d out of %d candidates",
			assigned, len(detailers))

		// 5.4. Создаем бронирование со снапшотом цены
		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			DetailerID:      assigned,
			ServiceID:       req.ServiceID,
			BookingTime:     req.BookingTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			LocationAddress: req.LocationAddress,
			ServiceName:     service.Name,
			FinalPrice:      service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: concurrent booking won the slot for detailer=%d at %s",
					assigned, req.BookingTime.Format(time.RFC3339))
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, detailer=%d",
		result.ID, result.DetailerID)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		DetailerID:      result.DetailerID,
		ServiceID:       result.ServiceID,
		BookingTime:     result.BookingTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		LocationAddress: result.LocationAddress,
		ServiceName:     result.ServiceName,
		FinalPrice:      result.FinalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
