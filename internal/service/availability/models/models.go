package models

import (
	"github.com/avdmv/DTL-BookingService/internal/domain"
	"github.com/avdmv/DTL-BookingService/pkg/types"
)

// Request модели

// WindowInput одно рабочее окно в запросе на обновление расписания
type WindowInput struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// UpdateScheduleRequest запрос на полную замену недельного расписания исполнителя
type UpdateScheduleRequest struct {
	UserID     string        `json:"userId"` // UUID инициатора
	DetailerID int64         `json:"detailerId"`
	Windows    []WindowInput `json:"windows"`
}

// ToDomainWindows конвертирует входные окна в domain модели.
// Времена уже должны быть провалидированы сервисом.
func (r *UpdateScheduleRequest) ToDomainWindows() []*domain.WeeklyWindow {
	windows := make([]*domain.WeeklyWindow, len(r.Windows))
	for i, w := range r.Windows {
		windows[i] = &domain.WeeklyWindow{
			DetailerID: r.DetailerID,
			DayOfWeek:  w.DayOfWeek,
			StartTime:  types.TimeString(w.StartTime),
			EndTime:    types.TimeString(w.EndTime),
		}
	}
	return windows
}

// Response модели

// WindowResponse одно рабочее окно в ответе
type WindowResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleResponse недельное расписание исполнителя
type ScheduleResponse struct {
	DetailerID int64            `json:"detailerId"`
	Windows    []WindowResponse `json:"windows"`
}

// FromDomainWindows конвертирует domain модели в DTO
func FromDomainWindows(detailerID int64, windows []*domain.WeeklyWindow) *ScheduleResponse {
	resp := &ScheduleResponse{
		DetailerID: detailerID,
		Windows:    make([]WindowResponse, len(windows)),
	}

	for i, w := range windows {
		resp.Windows[i] = WindowResponse{
			ID:        w.ID,
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		}
	}

	return resp
}
