package create_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/avdmv/DTL-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if _, err := uuid.Parse(req.CustomerID); err != nil {
		return fmt.Errorf("%w: customerID must be a valid UUID", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.BookingTime.IsZero() {
		return fmt.Errorf("%w: bookingTime is required", ErrInvalidInput)
	}

	if len(req.LocationAddress) < domain.MinLocationAddressLength {
		return fmt.Errorf("%w: locationAddress must be at least %d characters",
			ErrInvalidInput, domain.MinLocationAddressLength)
	}

	if len(req.LocationAddress) > domain.MaxLocationAddressLength {
		return fmt.Errorf("%w: locationAddress must be at most %d characters",
			ErrInvalidInput, domain.MaxLocationAddressLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
