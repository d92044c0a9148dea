package list_services

import (
	"net/http"

	"github.com/avdmv/DTL-BookingService/internal/api/handlers"
)

type Handler struct {
	catalogClient CatalogServiceClient
	logger        Logger
}

func NewHandler(catalogClient CatalogServiceClient, logger Logger) *Handler {
	return &Handler{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogClient.ListActiveServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Returned %d active services", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromCatalogServices(services))
}
