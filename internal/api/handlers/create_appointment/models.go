package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/domain"
	apptmodels "github.com/sharpcut/SC-AppointmentService/internal/service/appointments/models"
	createAppointment "github.com/sharpcut/SC-AppointmentService/internal/usecase/create_appointment"
	"github.com/sharpcut/SC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID string  `json:"serviceId"`
	Date      string  `json:"date"`      // YYYY-MM-DD
	StartTime string  `json:"startTime"` // HH:MM
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID uuid.UUID) (*createAppointment.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:  clientID,
		ServiceID: serviceID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *apptmodels.AppointmentResponse {
	return apptmodels.FromDomainAppointment(resp.Appointment)
}
