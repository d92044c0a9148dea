package get_available_slots

import (
	"time"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	getAvailableSlots "github.com/avdmv/DTL-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse один доступный слот
type SlotResponse struct {
	DetailerID int64  `json:"detailerId"`
	StartTime  string `json:"startTime"` // ISO 8601
	EndTime    string `json:"endTime"`   // ISO 8601
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string         `json:"date"` // "2025-06-02"
	ServiceID       int64          `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			DetailerID: s.DetailerID,
			StartTime:  s.StartTime.Format(time.RFC3339),
			EndTime:    s.EndTime.Format(time.RFC3339),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
