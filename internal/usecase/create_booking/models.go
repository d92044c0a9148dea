package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID      string    // UUID клиента (из заголовка аутентификации)
	ServiceID       int64     // ID услуги
	BookingTime     time.Time // Запрошенное время начала
	LocationAddress string    // Адрес выезда
	Notes           *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64     // ID созданного бронирования
	CustomerID      string    // UUID клиента
	DetailerID      int64     // Назначенный исполнитель
	ServiceID       int64     // ID услуги
	BookingTime     time.Time // Время начала
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус бронирования
	LocationAddress string    // Адрес выезда

	// Денормализованные данные
	ServiceName string  // Название услуги
	FinalPrice  float64 // Цена услуги на момент бронирования
	Notes       *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
