package cancel_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments/models"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, id uuid.UUID, req *models.CancelAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
