package cancel_appointment

import (
	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(clientID uuid.UUID) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		ClientID:           clientID,
		CancellationReason: r.CancellationReason,
	}
}
