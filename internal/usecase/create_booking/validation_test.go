package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avdmv/DTL-BookingService/pkg/ptr"
)

func TestValidateRequest(t *testing.T) {
	base := func() *Request {
		return &Request{
			CustomerID:      testCustomerID,
			ServiceID:       10,
			BookingTime:     time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			LocationAddress: "12 Main Street, Springfield",
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(r *Request) {},
		},
		{
			name:   "valid request with notes",
			mutate: func(r *Request) { r.Notes = ptr.Ptr("ring the doorbell twice") },
		},
		{
			name:    "empty customerID",
			mutate:  func(r *Request) { r.CustomerID = "" },
			wantErr: true,
		},
		{
			name:    "customerID is not a UUID",
			mutate:  func(r *Request) { r.CustomerID = "user-123" },
			wantErr: true,
		},
		{
			name:    "zero serviceID",
			mutate:  func(r *Request) { r.ServiceID = 0 },
			wantErr: true,
		},
		{
			name:    "negative serviceID",
			mutate:  func(r *Request) { r.ServiceID = -1 },
			wantErr: true,
		},
		{
			name:    "zero bookingTime",
			mutate:  func(r *Request) { r.BookingTime = time.Time{} },
			wantErr: true,
		},
		{
			name:    "address too short",
			mutate:  func(r *Request) { r.LocationAddress = "short" },
			wantErr: true,
		},
		{
			name:    "address too long",
			mutate:  func(r *Request) { r.LocationAddress = strings.Repeat("a", 501) },
			wantErr: true,
		},
		{
			name:    "notes too long",
			mutate:  func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("a", 501)) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
