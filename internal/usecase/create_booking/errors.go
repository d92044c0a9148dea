package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrCustomerNotFound возвращается, когда профиль клиента не найден
	ErrCustomerNotFound = errors.New("create_booking: customer profile not found")

	// ErrNoDetailersAvailable возвращается, когда ни одно рабочее окно
	// не покрывает запрошенное время
	ErrNoDetailersAvailable = errors.New("create_booking: no detailers available for this timeslot")

	// ErrSlotNotAvailable возвращается, когда все подходящие исполнители
	// уже заняты пересекающимися бронированиями
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotConflict возвращается, когда вставку отклонил exclusion constraint
	// хранилища (конкурентное бронирование успело раньше). Клиенту следует
	// перезапросить доступные слоты и повторить попытку.
	ErrSlotConflict = errors.New("create_booking: slot was taken by a concurrent booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
