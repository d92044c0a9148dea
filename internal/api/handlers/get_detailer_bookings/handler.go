package get_detailer_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdmv/DTL-BookingService/internal/api/handlers"
	"github.com/avdmv/DTL-BookingService/internal/api/middleware"
	"github.com/avdmv/DTL-BookingService/internal/domain"
	"github.com/avdmv/DTL-BookingService/internal/service/bookings"
	"github.com/avdmv/DTL-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidDetailerID = "некорректный ID исполнителя"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter     = "некорректные параметры фильтрации"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/detailers/{detailerId}/bookings
// Query params: date (optional, YYYY-MM-DD), status (optional), includeInactive (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	detailerID, err := strconv.ParseInt(vars["detailerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /detailers/{id}/bookings - Invalid detailer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDetailerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /detailers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetDetailerBookingsRequest{
		UserID:     userID,
		DetailerID: detailerID,
	}

	// Фильтр по дате задает границы суток
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /detailers/{id}/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		dayStart := date
		dayEnd := date.AddDate(0, 0, 1)
		req.RangeStart = &dayStart
		req.RangeEnd = &dayEnd
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	if r.URL.Query().Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.GetDetailerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /detailers/{id}/bookings - Access denied: detailer_id=%d, user_id=%s",
				detailerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /detailers/{id}/bookings - Invalid filter: detailer_id=%d, error=%v",
				detailerID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /detailers/{id}/bookings - Failed to get bookings: detailer_id=%d, error=%v",
				detailerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /detailers/{id}/bookings - Returned %d bookings: detailer_id=%d",
		len(result.Bookings), detailerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
