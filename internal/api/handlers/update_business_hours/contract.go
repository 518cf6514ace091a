package update_business_hours

import (
	"context"

	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceBusinessHours(ctx context.Context, req *models.UpdateBusinessHoursRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
