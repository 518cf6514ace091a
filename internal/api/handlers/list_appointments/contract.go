package list_appointments

import (
	"context"

	"github.com/sharpcut/SC-AppointmentService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByRange(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
