package get_schedule

import (
	"context"
	"time"

	"github.com/sharpcut/SC-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetSchedule(ctx context.Context, now time.Time) (*models.ScheduleResponse, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
