package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdmv/DTL-BookingService/internal/api/handlers"
	"github.com/avdmv/DTL-BookingService/internal/service/availability"
)

const (
	msgInvalidDetailerID = "некорректный ID исполнителя"
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

// Handle GET /api/v1/detailers/{detailerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	detailerID, err := strconv.ParseInt(vars["detailerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /detailers/{id}/availability - Invalid detailer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDetailerID)
		return
	}

	schedule, err := h.service.GetWeeklySchedule(r.Context(), detailerID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /detailers/{id}/availability - Invalid input: detailer_id=%d", detailerID)
			handlers.RespondBadRequest(w, msgInvalidDetailerID)

		default:
			h.logger.Error("GET /detailers/{id}/availability - Failed to get schedule: detailer_id=%d, error=%v",
				detailerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /detailers/{id}/availability - Returned %d windows: detailer_id=%d",
		len(schedule.Windows), detailerID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
