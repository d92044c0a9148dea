package availability

import (
	"context"

	"github.com/avdmv/DTL-BookingService/internal/domain"
	"github.com/avdmv/DTL-BookingService/internal/integrations/profileservice"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByDetailer(ctx context.Context, detailerID int64) ([]*domain.WeeklyWindow, error)
	ReplaceForDetailer(ctx context.Context, detailerID int64, windows []*domain.WeeklyWindow) error
}

// ProfileServiceClient интерфейс клиента сервиса профилей
type ProfileServiceClient interface {
	GetProfile(ctx context.Context, userID string) (*profileservice.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
