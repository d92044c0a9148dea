package get_available_slots

import (
	"time"

	"github.com/avdmv/DTL-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time     // Дата, на которую запрашивались слоты
	ServiceID       int64         // ID услуги
	DurationMinutes int           // Длительность услуги (ширина слота)
	Slots           []domain.Slot // Доступные слоты в порядке (исполнитель, время)
}
