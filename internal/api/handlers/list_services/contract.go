package list_services

import (
	"context"

	"github.com/avdmv/DTL-BookingService/internal/integrations/catalogservice"
)

type CatalogServiceClient interface {
	ListActiveServices(ctx context.Context) ([]catalogservice.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
