package domain

// Slot generation constants
const (
	// SlotStepMinutes шаг перебора кандидатов при генерации слотов.
	// Шаг может быть меньше длительности услуги, тогда кандидаты пересекаются
	// между собой - это ожидаемо, дедупликация остаётся на стороне клиента.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinDurationMinutes          = 5
	MaxDurationMinutes          = 480 // 8 часов
	MinLocationAddressLength    = 10
	MaxLocationAddressLength    = 500
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не блокирующие время исполнителя.
// Используются при фильтрации бронирований для подсчёта доступности.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, блокирующие время исполнителя
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
