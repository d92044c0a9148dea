package profileservice

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что сервис профилей недоступен и проверку профиля следует пропустить.
	ErrServiceDegraded = errors.New("profileservice unavailable: graceful degradation applied")
)
