package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	catalogClient "github.com/avdmv/DTL-BookingService/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	catalogClient    CatalogServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		catalogClient:    catalogClient,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов.
//
// Ответ формируется целиком либо не формируется вовсе: ошибка чтения
// хранилища не приводит к частичному списку слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (неактивная считается отсутствующей)
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем окна всех исполнителей на день недели
	dayOfWeek := domain.DayOfWeekFromDate(req.Date)

	windows, err := uc.availabilityRepo.GetByDayOfWeek(ctx, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get weekly windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly windows: %v", ErrInternal, err)
	}

	// Отсутствие окон - валидный результат, а не ошибка
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: no weekly windows for day_of_week=%d", dayOfWeek)
		return &Response{
			Date:            req.Date,
			ServiceID:       req.ServiceID,
			DurationMinutes: service.DurationMinutes,
			Slots:           []domain.Slot{},
		}, nil
	}

	// 4. Получаем активные бронирования, пересекающиеся с сутками запроса.
	// Выборка по пересечению интервалов, а не по началу бронирования:
	// бронирование, начавшееся накануне и продолжающееся после полуночи,
	// тоже учитывается.
	dayStart, dayEnd := dayBounds(req.Date)
	filter := domain.DetailerBookingsFilter{
		RangeStart:      &dayStart,
		RangeEnd:        &dayEnd,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	grouped := bookingsByDetailer(bookings)

	// 5. Для каждого окна генерируем кандидатов и отбрасываем конфликтующие.
	// Порядок результата: порядок окон из репозитория (исполнитель, затем
	// время), внутри окна - хронологический. Дедупликации между
	// исполнителями нет: один и тот же момент времени может встретиться
	// по разу на каждого свободного исполнителя.
	slots := make([]domain.Slot, 0)
	for _, window := range windows {
		candidates, err := enumerateSlots(window, req.Date, service.DurationMinutes, domain.SlotStepMinutes)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to enumerate slots for window id=%d: %v", window.ID, err)
			return nil, fmt.Errorf("%w: failed to enumerate slots: %v", ErrInternal, err)
		}

		slots = append(slots, filterConflicting(candidates, grouped[window.DetailerID])...)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
