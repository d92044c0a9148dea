package update_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdmv/DTL-BookingService/internal/api/handlers"
	"github.com/avdmv/DTL-BookingService/internal/api/middleware"
	"github.com/avdmv/DTL-BookingService/internal/service/availability"
	"github.com/avdmv/DTL-BookingService/internal/service/availability/models"
)

const (
	msgInvalidDetailerID  = "некорректный ID исполнителя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "некорректное рабочее окно"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/detailers/{detailerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	detailerID, err := strconv.ParseInt(vars["detailerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /detailers/{id}/availability - Invalid detailer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDetailerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /detailers/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /detailers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateScheduleRequest{
		UserID:     userID,
		DetailerID: detailerID,
		Windows:    req.Windows,
	}

	schedule, err := h.service.UpdateWeeklySchedule(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /detailers/{id}/availability - Access denied: detailer_id=%d, user_id=%s",
				detailerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidWindow):
			h.logger.Warn("PUT /detailers/{id}/availability - Invalid window: detailer_id=%d, error=%v",
				detailerID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /detailers/{id}/availability - Invalid input: detailer_id=%d, error=%v",
				detailerID, err)
			handlers.RespondBadRequest(w, msgInvalidDetailerID)

		default:
			h.logger.Error("PUT /detailers/{id}/availability - Failed to update schedule: detailer_id=%d, error=%v",
				detailerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /detailers/{id}/availability - Schedule replaced: detailer_id=%d, windows=%d, user_id=%s",
		detailerID, len(schedule.Windows), userID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
