package create_booking

import (
	"errors"
	"net/http"

	"github.com/avdmv/DTL-BookingService/internal/api/handlers"
	"github.com/avdmv/DTL-BookingService/internal/api/middleware"
	createBooking "github.com/avdmv/DTL-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidBookingTime   = "некорректный формат времени бронирования, ожидается ISO 8601"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgServiceNotFound      = "услуга не найдена"
	msgCustomerNotFound     = "профиль клиента не найден"
	msgNoDetailersAvailable = "на выбранное время нет доступных исполнителей"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgSlotConflict         = "слот только что заняли, обновите список доступных слотов"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Клиентом всегда выступает аутентифицированный пользователь
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse booking time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrNoDetailersAvailable):
			h.logger.Warn("POST /bookings - No detailers available: service_id=%d, time=%s",
				req.ServiceID, req.BookingTime)
			handlers.RespondError(w, http.StatusConflict, msgNoDetailersAvailable)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: service_id=%d, time=%s",
				req.ServiceID, req.BookingTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: service_id=%d, time=%s",
				req.ServiceID, req.BookingTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%s, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%s, service_id=%d, error=%v",
				customerID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%s, detailer_id=%d",
		result.ID, customerID, result.DetailerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
