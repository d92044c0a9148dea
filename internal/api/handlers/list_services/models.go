package list_services

import "github.com/avdmv/DTL-BookingService/internal/integrations/catalogservice"

// ServiceResponse одна услуга каталога
type ServiceResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"durationMinutes"`
	Features        []string `json:"features"`
}

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromCatalogServices конвертирует услуги каталога в HTTP response
func FromCatalogServices(services []catalogservice.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, len(services)),
	}

	for i, s := range services {
		resp.Services[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Features:        s.Features,
		}
	}

	return resp
}
